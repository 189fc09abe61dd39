package services

import "github.com/velandev/website/internal/app/models"

// sitePages is the site copy, in navigation order
var sitePages = []models.Page{
	{
		Slug:    "home",
		Title:   "VelanDev",
		Tagline: "We build intelligent software that moves your business forward.",
		Sections: []models.PageSection{
			{
				Heading: "What We Build",
				Items: []models.PageItem{
					{Name: "AI-Powered ERP Systems", Description: "Next-generation business management with intelligent automation."},
					{Name: "Smart Supply Chain", Description: "AI-driven inventory and logistics platforms with predictive analytics."},
					{Name: "Intelligent HR Platforms", Description: "AI-enhanced employee management with smart attendance and performance insights."},
					{Name: "Custom AI Solutions", Description: "Scalable AI-powered SaaS products built for modern enterprises."},
				},
			},
			{
				Heading: "By the Numbers",
				Items: []models.PageItem{
					{Name: "Projects Delivered", Description: "100+"},
					{Name: "Happy Clients", Description: "50+"},
					{Name: "Client Satisfaction", Description: "98%"},
					{Name: "AI-Powered Support", Description: "24/7"},
				},
			},
		},
	},
	{
		Slug:    "about",
		Title:   "About Us",
		Tagline: "A team of engineers and designers building software that lasts.",
		Sections: []models.PageSection{
			{
				Heading: "Our Values",
				Items: []models.PageItem{
					{Name: "Innovation", Description: "We stay ahead of the curve and bring modern engineering to every project."},
					{Name: "Quality", Description: "Well-tested, maintainable software is the baseline, not the goal."},
					{Name: "Transparency", Description: "Clear communication and honest estimates at every step."},
					{Name: "Collaboration", Description: "We work as an extension of your team, not a black box."},
					{Name: "Security", Description: "Security and privacy considerations are built in from day one."},
					{Name: "Global Reach", Description: "We deliver for clients across time zones and markets."},
				},
			},
		},
	},
	{
		Slug:    "services",
		Title:   "Services",
		Tagline: "End-to-end development services from ideation to deployment and maintenance.",
		Sections: []models.PageSection{
			{
				Heading: "What We Offer",
				Items: []models.PageItem{
					{Name: "Custom Software Development", Description: "Tailored software solutions that address your unique business challenges, delivered with agile methodologies."},
					{Name: "Web & Mobile Application Development", Description: "Powerful web applications and native mobile apps built with modern frameworks and best practices."},
					{Name: "AI & Data Solutions", Description: "Artificial intelligence and machine learning to automate processes, gain insights, and drive innovation."},
					{Name: "Cloud & Infrastructure Services", Description: "Cloud-native migration, optimization, and management for performance, security, and cost efficiency."},
					{Name: "UI/UX & Product Design", Description: "Intuitive, engaging user experiences backed by user research and usability testing."},
					{Name: "System Integration", Description: "API development, third-party integrations, and enterprise application integration."},
					{Name: "Ongoing Maintenance & Support", Description: "Proactive monitoring, regular updates, and rapid issue resolution."},
				},
			},
		},
	},
	{
		Slug:    "products",
		Title:   "Products",
		Tagline: "Enterprise software products ready to adapt to your business.",
		Sections: []models.PageSection{
			{
				Heading: "Product Lines",
				Items: []models.PageItem{
					{Name: "ERP & Management Systems", Description: "Unified enterprise resource planning across finance, HR, inventory, and operations."},
					{Name: "College / University ERP", Description: "Academic management covering admissions, attendance, examinations, fees, and student lifecycle."},
					{Name: "Inventory & Import Export Management", Description: "Shipment tracking, customs documentation, and supply chain optimization for import-export businesses."},
					{Name: "HR & Payroll Management", Description: "Recruitment, onboarding, attendance, payroll processing, and performance evaluation."},
					{Name: "CRM & Sales Automation", Description: "Lead tracking, sales pipelines, and automated customer engagement workflows."},
					{Name: "Custom SaaS Products", Description: "Bespoke software-as-a-service solutions built on modern, scalable architecture."},
				},
			},
		},
	},
	{
		Slug:    "industries",
		Title:   "Industries",
		Tagline: "Tailored software solutions across sectors.",
		Sections: []models.PageSection{
			{
				Heading: "Sectors We Serve",
				Items: []models.PageItem{
					{Name: "Education", Description: "Learning management systems, student portals, and administrative platforms for schools and universities."},
					{Name: "Logistics & Import Export", Description: "Intelligent supply chain solutions from inventory management to customs documentation."},
					{Name: "Healthcare", Description: "Compliant digital health systems for hospitals, clinics, and healthcare providers."},
					{Name: "Manufacturing", Description: "Industry 4.0 automation, quality control, and real-time production visibility."},
					{Name: "Retail", Description: "Omnichannel solutions connecting online and offline retail operations."},
					{Name: "Finance", Description: "Secure, compliant fintech solutions for banks and corporate finance departments."},
					{Name: "Government & NGOs", Description: "Citizen-centric digital platforms for public sector organizations."},
				},
			},
		},
	},
	{
		Slug:    "careers",
		Title:   "Careers",
		Tagline: "Build your career with a team that builds great software.",
		Sections: []models.PageSection{
			{
				Heading: "Why VelanDev",
				Items: []models.PageItem{
					{Name: "Growth Opportunities", Description: "Clear career paths and continuous learning opportunities to advance your skills."},
					{Name: "Collaborative Culture", Description: "Work alongside talented engineers in a supportive, team-oriented environment."},
					{Name: "Learning & Development", Description: "Access to training programs, certifications, and conference attendance."},
					{Name: "Work-Life Balance", Description: "Flexible work arrangements and policies that support your well-being."},
				},
			},
			{
				Heading: "Don't See a Role That Fits?",
				Body:    "Send us a general application and we'll reach out when something opens up.",
			},
		},
	},
	{
		Slug:    "contact",
		Title:   "Contact",
		Tagline: "We'd love to hear from you.",
		Sections: []models.PageSection{
			{
				Heading: "Get in Touch",
				Body:    "Tell us about your project and our team will get back to you within one business day.",
			},
		},
	},
}
