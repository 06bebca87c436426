package models

import (
	"html/template"
	"strings"
	"time"
	"unicode/utf8"
)

type Article struct {
	Slug      string
	Title     string
	Category  string
	Date      string
	Published time.Time
	ReadTime  string
	Body      string
	HTML      template.HTML
}

// Excerpt returns the first n runes of the article body followed by an
// ellipsis, the way the blog listing teases each post.
func (a Article) Excerpt(n int) string {
	body := strings.Join(strings.Fields(a.Body), " ")
	if utf8.RuneCountInString(body) <= n {
		return body + "..."
	}
	return string([]rune(body)[:n]) + "..."
}

type Comment struct {
	ID    int64
	Name  string
	Date  string
	Text  string
	Likes int
}

// Initials is the avatar fallback: first letter of each name part, at
// most two.
func (c Comment) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(c.Name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}

type Profile struct {
	Name      string   `yaml:"name"`
	FirstName string   `yaml:"firstName"`
	LastName  string   `yaml:"lastName"`
	Brand     string   `yaml:"brand"`
	Tagline   string   `yaml:"tagline"`
	Intro     string   `yaml:"intro"`
	Email     string   `yaml:"email"`
	Bio       []string `yaml:"bio"`
	OpenTo    string   `yaml:"openTo"`
}

type Stat struct {
	Icon  string `yaml:"icon"`
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type FeaturedCard struct {
	Tag         string `yaml:"tag"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
}

type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Fact struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
}

type Experience struct {
	Type        string   `yaml:"type"`
	Icon        string   `yaml:"icon"`
	Title       string   `yaml:"title"`
	Org         string   `yaml:"org"`
	Period      string   `yaml:"period"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

type Project struct {
	Icon        string   `yaml:"icon"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Status      string   `yaml:"status"`
}

// Completed reports whether the project badge uses the primary color.
func (p Project) Completed() bool {
	return p.Status == "Completed"
}

type SocialLink struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

type ComingSoon struct {
	Name  string `yaml:"name"`
	Badge string `yaml:"badge"`
}

// Site is the compiled-in content shared by every page.
type Site struct {
	Profile     Profile        `yaml:"profile"`
	Stats       []Stat         `yaml:"stats"`
	Featured    []FeaturedCard `yaml:"featured"`
	Milestones  []Milestone    `yaml:"milestones"`
	Facts       []Fact         `yaml:"facts"`
	Experiences []Experience   `yaml:"experiences"`
	Projects    []Project      `yaml:"projects"`
	Social      []SocialLink   `yaml:"social"`
	ComingSoon  []ComingSoon   `yaml:"comingSoon"`
}

type NavLink struct {
	Path  string
	Label string
}

type Toast struct {
	Title       string
	Description string
}

// Chrome carries what the shared header, nav and footer need.
type Chrome struct {
	PageTitle string
	SiteTitle string
	BaseURL   string
	Active    string
	Nav       []NavLink
	Profile   Profile
	Social    []SocialLink
	Coming    []ComingSoon
	Year      int
	Toast     *Toast
}
