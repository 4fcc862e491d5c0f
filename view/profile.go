package view

import "html/template"

// Skill is one row of the skills table.
type Skill struct {
	ID       string
	Category string
	Skills   string
}

// Skills lists the technical skills in display order.
var Skills = []Skill{
	{ID: "lang", Category: "Languages", Skills: "JavaScript, TypeScript, Golang"},
	{ID: "frontend", Category: "Frontend Frameworks", Skills: "React.js, Next.js, Angular, React Native"},
	{ID: "backend", Category: "Backend Frameworks", Skills: "Node.js, Express.js, Nest.js, Fastify, Hono.js"},
	{ID: "db", Category: "Databases", Skills: "MySQL, MongoDB"},
	{ID: "devops", Category: "DevOps Tools", Skills: "AWS, Docker, Jenkins"},
	{ID: "comp", Category: "Complementary Skills", Skills: "Team Leading"},
}

// Link is an outbound link in the footer.
type Link struct {
	Label string
	Href  template.URL
	Text  string
}

// Profile is the identity shown on the page.
type Profile struct {
	Name     string
	Title    string
	LinkedIn Link
	GitHub   Link
	Phone    Link
	Email    Link
}

// DefaultProfile is the profile rendered by the site.
var DefaultProfile = Profile{
	Name:     "Aishwary Shah",
	Title:    "Senior Software Developer | MERN Stack Expert",
	LinkedIn: Link{Label: "LinkedIn Profile", Href: "https://www.linkedin.com/in/aishwary-shah-web-developer/", Text: "LinkedIn"},
	GitHub:   Link{Label: "GitHub Profile", Href: "https://github.com/aishwary11", Text: "GitHub"},
	Phone:    Link{Label: "Phone", Href: "tel:+918591693650", Text: "+91-8591693650"},
	Email:    Link{Label: "Email", Href: "mailto:aishwary46@gmail.com", Text: "aishwary46@gmail.com"},
}

// Metadata is the document head: title, description and social cards.
type Metadata struct {
	Title       string
	Description string
	Keywords    []string
	Author      string
	URL         string
	SiteName    string
	Locale      string
	OGTitle     string
	OGDesc      string
	TwitterCard string
	Viewport    string
}

// DefaultMetadata is the head of the rendered page.
var DefaultMetadata = Metadata{
	Title:       "Aishwary Shah | Senior Software Developer",
	Description: "Senior Software Developer with 6+ years of experience in MERN stack, React.js, Node.js, and full-stack development. Specializing in scalable web applications, microservices, and CI/CD optimization.",
	Keywords: []string{
		"Aishwary Shah", "Software Developer", "MERN Stack", "React.js",
		"Node.js", "Full Stack Developer", "JavaScript", "TypeScript",
	},
	Author:      "Aishwary Shah",
	URL:         "https://aishwaryshah.com",
	SiteName:    "Aishwary Shah Portfolio",
	Locale:      "en_US",
	OGTitle:     "Aishwary Shah | Senior Software Developer",
	OGDesc:      "Senior Software Developer specializing in MERN stack and full-stack development",
	TwitterCard: "summary_large_image",
	Viewport:    "width=device-width, initial-scale=1, maximum-scale=5",
}
