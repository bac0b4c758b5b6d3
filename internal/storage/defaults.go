package storage

import "github.com/vwolf/portfolio-api/internal/models"

// DefaultSiteContent is the fallback copy for every editable text
// fragment on the site. It seeds a fresh data directory and backfills
// keys added after a site-content file was first written; a persisted
// value always wins over the default for the same key.
var DefaultSiteContent = []models.SiteContent{
	{Key: "hero.title", Value: "Hi, I build things for the web"},
	{Key: "hero.subtitle", Value: "Full-stack developer crafting fast, accessible applications"},
	{Key: "about.title", Value: "About Me"},
	{Key: "about.description", Value: "I'm a software developer with a passion for clean architecture and small, sharp tools. When I'm not coding I'm probably hiking or reading."},
	{Key: "projects.title", Value: "Projects"},
	{Key: "projects.subtitle", Value: "A selection of things I've built"},
	{Key: "blog.title", Value: "Blog"},
	{Key: "blog.subtitle", Value: "Notes on software, tools and everything in between"},
	{Key: "contact.title", Value: "Get in Touch"},
	{Key: "contact.subtitle", Value: "Have a project in mind? Drop me a line."},
	{Key: "footer.text", Value: "Built with too much coffee."},
}
