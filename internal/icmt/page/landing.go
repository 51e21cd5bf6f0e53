package page

// Link is a navigation affordance.
type Link struct {
	Label string
	Href  string
}

// Landing is the static home page.
type Landing struct {
	Title string
	Links []Link
}

// NewLanding returns the home page content.
func NewLanding() Landing {
	return Landing{
		Title: "Welcome to ICMT",
		Links: []Link{
			{Label: "Login", Href: "/login"},
			{Label: "Register", Href: "/register"},
		},
	}
}
