package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume is one version of a user's resume. Version counting is per document:
// every update bumps it by one, duplication starts a fresh document at 1.
// "All versions" of a resume are the owner's documents sharing the exact same
// title, which is how the product has always grouped them.
type Resume struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Version  int       `json:"version"`
	IsActive bool      `json:"isActive"`

	ResumeContent

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResumeContent is everything the owner edits through the builder form. It is
// the full payload of create and update requests; both validate it the same way.
type ResumeContent struct {
	Title          string          `json:"title" validate:"required,max=100"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education" validate:"dive"`
	Experience     []Experience    `json:"experience" validate:"dive"`
	Skills         []Skill         `json:"skills" validate:"dive"`
	Projects       []Project       `json:"projects" validate:"dive"`
	Certifications []Certification `json:"certifications" validate:"dive"`
	Languages      []Language      `json:"languages" validate:"dive"`
	Template       string          `json:"template" validate:"omitempty,oneof=modern classic creative minimal"`
	Settings       Settings        `json:"settings"`
}

type PersonalInfo struct {
	FirstName string  `json:"firstName" validate:"required,max=50"`
	LastName  string  `json:"lastName" validate:"required,max=50"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone,omitempty"`
	Address   Address `json:"address,omitempty"`
	LinkedIn  string  `json:"linkedin,omitempty"`
	GitHub    string  `json:"github,omitempty"`
	Website   string  `json:"website,omitempty"`
	Summary   string  `json:"summary,omitempty" validate:"max=500"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

type Experience struct {
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string   `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Current      bool     `json:"current"`
	Description  string   `json:"description" validate:"required"`
	Achievements []string `json:"achievements,omitempty"`
}

type Skill struct {
	Name     string `json:"name" validate:"required"`
	Level    string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Category string `json:"category" validate:"omitempty,oneof=Technical 'Soft Skills' Languages Tools Other"`
}

type Project struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string   `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Current      bool     `json:"current"`
}

type Certification struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	URL    string `json:"url,omitempty"`
}

type Language struct {
	Name        string `json:"name" validate:"required"`
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=Basic Conversational Fluent Native"`
}

type Settings struct {
	FontSize    string `json:"fontSize" validate:"omitempty,oneof=small medium large"`
	Spacing     string `json:"spacing" validate:"omitempty,oneof=compact normal spacious"`
	ColorScheme string `json:"colorScheme" validate:"omitempty,oneof=blue green purple red gray"`
}

// ApplyDefaults fills the defaults the builder form leaves out, so stored
// documents always carry concrete values and empty sections serialize as [].
func (c *ResumeContent) ApplyDefaults() {
	if c.Template == "" {
		c.Template = "modern"
	}
	if c.Settings.FontSize == "" {
		c.Settings.FontSize = "medium"
	}
	if c.Settings.Spacing == "" {
		c.Settings.Spacing = "normal"
	}
	if c.Settings.ColorScheme == "" {
		c.Settings.ColorScheme = "blue"
	}
	for i := range c.Skills {
		if c.Skills[i].Level == "" {
			c.Skills[i].Level = "Intermediate"
		}
		if c.Skills[i].Category == "" {
			c.Skills[i].Category = "Technical"
		}
	}
	for i := range c.Languages {
		if c.Languages[i].Proficiency == "" {
			c.Languages[i].Proficiency = "Conversational"
		}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Skills == nil {
		c.Skills = []Skill{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	if c.Certifications == nil {
		c.Certifications = []Certification{}
	}
	if c.Languages == nil {
		c.Languages = []Language{}
	}
}
