package database

import (
	"github.com/FijacksProp/portfolio/models"
	"github.com/rs/zerolog/log"
)

// Seed clears the project and skill tables and repopulates them with the
// fixed demo dataset. Development and demo use only; contact messages are
// never touched.
func (d Database) Seed() error {
	if err := d.projectRepo.DeleteAll(); err != nil {
		return err
	}
	if err := d.skillRepo.DeleteAll(); err != nil {
		return err
	}

	for _, skill := range seedSkills() {
		if err := d.skillRepo.Add(skill); err != nil {
			return err
		}
		log.Info().Str("skill", skill.Name).Msg("Created skill")
	}

	for _, project := range seedProjects() {
		if err := d.projectRepo.Add(project); err != nil {
			return err
		}
		log.Info().Str("project", project.Title).Msg("Created project")
	}

	log.Info().
		Int("skills", len(seedSkills())).
		Int("projects", len(seedProjects())).
		Msg("Sample data created successfully")
	return nil
}

func seedSkills() []*models.Skill {
	return []*models.Skill{
		// Frontend
		{Name: "HTML5", Category: models.SkillCategoryFrontend, Description: "Semantic markup and accessibility", Order: 1},
		{Name: "CSS3", Category: models.SkillCategoryFrontend, Description: "Responsive design and animations", Order: 2},
		{Name: "JavaScript", Category: models.SkillCategoryFrontend, Description: "ES6+ and DOM manipulation", Order: 3},
		{Name: "React", Category: models.SkillCategoryFrontend, Description: "Component-based UI development", Order: 4},
		{Name: "Tailwind CSS", Category: models.SkillCategoryFrontend, Description: "Utility-first CSS framework", Order: 5},

		// Backend
		{Name: "Python", Category: models.SkillCategoryBackend, Description: "Full-stack development", Order: 1},
		{Name: "Django", Category: models.SkillCategoryBackend, Description: "Web framework and REST APIs", Order: 2},
		{Name: "Node.js", Category: models.SkillCategoryBackend, Description: "JavaScript runtime", Order: 3},
		{Name: "Express.js", Category: models.SkillCategoryBackend, Description: "Node.js web framework", Order: 4},

		// Database
		{Name: "PostgreSQL", Category: models.SkillCategoryDatabase, Description: "Relational database management", Order: 1},
		{Name: "MongoDB", Category: models.SkillCategoryDatabase, Description: "NoSQL document database", Order: 2},
		{Name: "Redis", Category: models.SkillCategoryDatabase, Description: "In-memory data structure store", Order: 3},

		// Expanding
		{Name: "Docker", Category: models.SkillCategoryExpanding, Description: "Containerization", Order: 1},
		{Name: "AWS", Category: models.SkillCategoryExpanding, Description: "Cloud computing platform", Order: 2},
		{Name: "Git", Category: models.SkillCategoryExpanding, Description: "Version control system", Order: 3},
	}
}

func seedProjects() []*models.Project {
	return []*models.Project{
		{
			Title:            "E-Commerce Platform",
			Description:      "A full-featured e-commerce platform built with Django, featuring user authentication, payment processing, inventory management, and admin dashboard.",
			ShortDescription: "Complete e-commerce solution with Django",
			Technologies:     "Python, Django, PostgreSQL, Stripe, HTML5, CSS3, JavaScript",
			Featured:         true,
		},
		{
			Title:            "Task Management App",
			Description:      "A collaborative task management application with real-time updates, team collaboration features, and project tracking capabilities.",
			ShortDescription: "Real-time task management for teams",
			Technologies:     "React, Node.js, Socket.io, MongoDB, Express.js",
			Featured:         true,
		},
		{
			Title:            "Personal Finance Tracker",
			Description:      "A comprehensive personal finance management tool with budgeting, expense tracking, financial goals, and detailed reporting.",
			ShortDescription: "Track expenses and manage budgets",
			Technologies:     "Python, Django, Chart.js, SQLite, Bootstrap",
			Featured:         true,
		},
		{
			Title:            "Weather Dashboard",
			Description:      "A responsive weather dashboard that displays current conditions and forecasts for multiple locations with beautiful data visualizations.",
			ShortDescription: "Weather data visualization dashboard",
			Technologies:     "JavaScript, D3.js, OpenWeather API, HTML5, CSS3",
			Featured:         false,
		},
		{
			Title:            "Blog Platform",
			Description:      "A modern blogging platform with markdown support, SEO optimization, comment system, and social media integration.",
			ShortDescription: "Modern blogging platform with SEO",
			Technologies:     "Django, Markdown, PostgreSQL, Tailwind CSS",
			Featured:         false,
		},
	}
}
