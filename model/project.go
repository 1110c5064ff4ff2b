package model

// Project is one entry of the projects view.
type Project struct {
	Name        string
	Description string
	Tech        []string
	URL         string
}
