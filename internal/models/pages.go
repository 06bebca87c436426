package models

import "github.com/riradoro03/sports-insights-hub/internal/hero"

type IndexPageData struct {
	Chrome
	Site     Site
	Sections []hero.Section
	Label    string
}

type AboutPageData struct {
	Chrome
	Site Site
}

type ExperiencesPageData struct {
	Chrome
	Experiences []Experience
}

type ProjectsPageData struct {
	Chrome
	Projects []Project
}

type BlogPageData struct {
	Chrome
	Articles []Article
}

type BlogPostPageData struct {
	Chrome
	Found    bool
	Article  Article
	View     string
	Comments []Comment
}

type ContactPageData struct {
	Chrome
}

type ErrorPageData struct {
	Chrome
	Status  int
	Message string
}
