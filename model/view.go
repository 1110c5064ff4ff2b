package model

// View identifies which top-level screen is active.
type View int

const (
	ViewHome View = iota
	ViewProjects
	ViewBlog
)

func (v View) String() string {
	switch v {
	case ViewProjects:
		return "projects"
	case ViewBlog:
		return "blog"
	default:
		return "home"
	}
}
