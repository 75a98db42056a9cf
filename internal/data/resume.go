package data

import "github.com/CalebHellmund/calebhellmund.github.io/internal/model"

var ResumeData = model.Resume{
	Name:     "Alex Johnson",
	Title:    "Senior Software Engineer",
	Email:    "alex@example.com",
	GitHub:   "https://github.com/yourusername",
	LinkedIn: "https://linkedin.com/in/yourusername",
	Summary:  "Passionate software engineer with 6+ years of experience building scalable web applications, developer tools, and AI-powered systems. I love turning complex problems into elegant, maintainable solutions.",
	Skills: []model.SkillCategory{
		{Name: "languages", Items: []string{"TypeScript", "Python", "Rust", "Go", "C++", "SQL"}},
		{Name: "frameworks", Items: []string{"React", "Astro", "FastAPI", "Node.js", "Next.js"}},
		{Name: "tools", Items: []string{"Docker", "Kubernetes", "Terraform", "Git", "CI/CD"}},
		{Name: "cloud", Items: []string{"AWS", "GCP", "Vercel", "Cloudflare"}},
		{Name: "other", Items: []string{"System Design", "Machine Learning", "WebGL", "PostgreSQL", "Redis"}},
	},
	Experience: []model.Experience{
		{
			Role:    "Senior Software Engineer",
			Company: "Acme Corp",
			Period:  "2022 – Present",
			Bullets: []string{
				"Led architecture and delivery of a distributed event-processing platform handling 2M events/day.",
				"Mentored 4 junior engineers, conducting weekly 1:1s and code reviews.",
				"Reduced API p99 latency by 60% through query optimization and strategic caching.",
				"Championed migration from REST to GraphQL, cutting over-fetching by 40%.",
			},
		},
		{
			Role:    "Software Engineer",
			Company: "Startup XYZ",
			Period:  "2020 – 2022",
			Bullets: []string{
				"Built a real-time collaborative document editor used by 50K+ monthly active users.",
				"Implemented a CI/CD pipeline reducing deployment time from 45 minutes to under 5 minutes.",
				"Designed and shipped a public REST API with rate limiting, authentication, and detailed docs.",
			},
		},
		{
			Role:    "Junior Developer",
			Company: "Freelance",
			Period:  "2018 – 2020",
			Bullets: []string{
				"Delivered 12+ client projects spanning e-commerce, content sites, and internal tooling.",
				"Introduced automated testing, raising code coverage from 0% to 80% on key projects.",
			},
		},
	},
	Education: []model.Education{
		{
			Degree:      "B.S. Computer Science",
			Institution: "State University",
			Period:      "2014 – 2018",
			Notes:       `GPA: 3.8 · Dean's List · Senior Thesis: "Efficient Graph Algorithms for Social Network Analysis"`,
		},
	},
}
