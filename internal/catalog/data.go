package catalog

// services is the catalog shown on the services pages. Kept in sync with the
// marketing copy by hand.
var services = []Service{
	{
		ID:          "website-development",
		Title:       "Website Development",
		Description: "Custom web applications built with modern technologies like React, Next.js, and Node.js. We create responsive, fast, and SEO-optimized websites that drive business growth.",
		Features: []string{
			"Custom React & Next.js Development",
			"Responsive Design",
			"SEO Optimization",
			"Performance Optimization",
			"Cross-browser Compatibility",
			"Modern UI/UX Design",
		},
		Icon:     "🌐",
		Price:    "Starting at $50",
		Duration: "4-8 weeks",
		Category: "development",
	},
	{
		ID:          "maintenance",
		Title:       "Website Maintenance",
		Description: "Keep your website running smoothly with our comprehensive maintenance services. Regular updates, security patches, and performance monitoring.",
		Features: []string{
			"Regular Security Updates",
			"Performance Monitoring",
			"Content Updates",
			"Backup Management",
			"SSL Certificate Management",
			"24/7 Support",
		},
		Icon:     "🔧",
		Price:    "Starting at $12/month",
		Duration: "Ongoing",
		Category: "maintenance",
	},
	{
		ID:          "deployment",
		Title:       "Deployment & DevOps",
		Description: "Professional deployment services with CI/CD pipelines, cloud infrastructure setup, and monitoring solutions for optimal performance.",
		Features: []string{
			"CI/CD Pipeline Implementation",
			"Docker Containerization",
			"Load Balancing",
			"Monitoring & Logging",
			"Auto-scaling Configuration",
		},
		Icon:     "🚀",
		Price:    "Starting at $1,500",
		Duration: "1-2 weeks",
		Category: "devops",
	},
	{
		ID:          "analytics",
		Title:       "Analytics & Insights",
		Description: "Comprehensive analytics setup and reporting to help you understand your users and optimize your digital presence for better results.",
		Features: []string{
			"Google Analytics 4 Setup",
			"User Behavior Insights",
			"Performance Reports",
			"A/B Testing Implementation",
		},
		Icon:     "📊",
		Price:    "Starting at $500",
		Duration: "1-2 weeks",
		Category: "analytics",
	},
	{
		ID:          "ecommerce",
		Title:       "E-commerce Solutions",
		Description: "Complete e-commerce platforms with payment integration, inventory management, and customer relationship tools.",
		Features: []string{
			"Payment Gateway Integration",
			"Inventory Management",
			"Order Processing System",
			"Customer Portal",
			"Multi-vendor Support",
			"Mobile Commerce",
		},
		Icon:     "🛒",
		Price:    "Starting at $8700",
		Duration: "8-12 weeks",
		Category: "ecommerce",
	},
	{
		ID:          "consulting",
		Title:       "Technical Consulting",
		Description: "Expert guidance on technology decisions, architecture planning, and digital transformation strategies for your business.",
		Features: []string{
			"Technology Stack Recommendations",
			"Architecture Planning",
			"Code Review & Optimization",
			"Team Training",
			"Digital Strategy",
			"Migration Planning",
		},
		Icon:     "💡",
		Price:    "Free",
		Duration: "Flexible",
		Category: "consulting",
	},
}

var categories = []Category{
	{ID: "development", Name: "Development", Description: "Custom web development services"},
	{ID: "maintenance", Name: "Maintenance", Description: "Ongoing website maintenance and support"},
	{ID: "devops", Name: "DevOps", Description: "Deployment and infrastructure services"},
	{ID: "analytics", Name: "Analytics", Description: "Data analysis and insights"},
	{ID: "ecommerce", Name: "E-commerce", Description: "Online store solutions"},
	{ID: "consulting", Name: "Consulting", Description: "Technical consulting and strategy"},
}
