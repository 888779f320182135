package schema

import "resumegen/resume/model"

// Example returns a filled-in sample resume used by the CLI --example mode
// and by the form's "load example" action.
func Example() model.Resume {
	skills := model.NewSkillsMap()
	skills.Set("Programming Languages", []string{"Python", "JavaScript", "TypeScript", "SQL", "HTML", "CSS"})
	skills.Set("Frameworks & Libraries", []string{"Django", "Flask", "React", "Node.js", "Express", "Redux"})
	skills.Set("Cloud & DevOps", []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Git", "GitHub Actions"})
	skills.Set("Databases", []string{"PostgreSQL", "MongoDB", "Redis", "DynamoDB"})
	skills.Set("Tools & Methodologies", []string{"Agile", "Scrum", "Jira", "RESTful APIs", "GraphQL"})

	return model.Resume{
		Name: "John Doe",
		ContactInfo: []string{
			"john.doe@email.com",
			"(555) 123-4567",
			"linkedin.com/in/johndoe",
			"San Francisco, CA",
		},
		ProfessionalSummary: "Results-driven Software Engineer with 5+ years of experience designing and developing scalable applications. Proficient in Python, JavaScript, and cloud technologies. Strong problem-solving skills and passion for creating efficient, maintainable code.",
		WorkExperience: []model.Experience{
			{
				Title:     "Senior Software Engineer",
				Company:   "Tech Solutions Inc.",
				Location:  "San Francisco, CA",
				StartDate: "January 2020",
				EndDate:   "Present",
				Responsibilities: []string{
					"Develop and maintain cloud-based applications using Python, Django, and AWS services",
					"Lead a team of 5 engineers, implementing Agile methodologies and CI/CD practices",
					"Optimize database queries and application performance, reducing load times by 40%",
				},
				Achievements: []string{
					"Implemented microservices architecture that improved system scalability by 200%",
					"Reduced infrastructure costs by 30% through AWS optimization",
				},
			},
			{
				Title:     "Software Engineer",
				Company:   "WebDev Enterprises",
				Location:  "Oakland, CA",
				StartDate: "June 2018",
				EndDate:   "December 2019",
				Responsibilities: []string{
					"Developed responsive web applications using React, Node.js, and MongoDB",
					"Collaborated with product managers to define requirements and features",
					"Implemented automated testing, achieving 90% code coverage",
				},
				Achievements: []string{
					"Developed a feature that increased user engagement by 25%",
					"Mentored 3 junior developers who were later promoted",
				},
			},
		},
		TechnicalSkills: skills,
		Education: []model.Education{
			{
				Degree:          "Master of Science in Computer Science",
				Institution:     "University of California, Berkeley",
				Location:        "Berkeley, CA",
				GraduationDate:  "May 2018",
				GPA:             "3.9/4.0",
				RelevantCourses: []string{"Advanced Algorithms", "Machine Learning", "Distributed Systems", "Cloud Computing"},
			},
			{
				Degree:          "Bachelor of Science in Computer Engineering",
				Institution:     "Stanford University",
				Location:        "Stanford, CA",
				GraduationDate:  "May 2016",
				GPA:             "3.8/4.0",
				RelevantCourses: []string{"Data Structures", "Computer Architecture", "Operating Systems", "Database Systems"},
			},
		},
	}
}
