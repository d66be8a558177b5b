package profile

import (
	"fmt"
	"strings"
)

type profileData struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Headline       string `json:"headline"`
	Summary        string `json:"summary"`
	ProfilePicture string `json:"profilePicture"`
	Geo            struct {
		Full string `json:"full"`
	} `json:"geo"`
	Position []struct {
		CompanyName string `json:"companyName"`
		Title       string `json:"title"`
		Location    string `json:"location"`
		Description string `json:"description"`
	} `json:"position"`
	Educations []struct {
		SchoolName   string `json:"schoolName"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldOfStudy"`
		Grade        string `json:"grade"`
		Description  string `json:"description"`
	} `json:"educations"`
	Skills []struct {
		Name string `json:"name"`
	} `json:"skills"`
	Languages []struct {
		Name        string `json:"name"`
		Proficiency string `json:"proficiency"`
	} `json:"languages"`
	Certifications []struct {
		Name string `json:"name"`
	} `json:"certifications"`
}

// formatProfile 把档案 JSON 整理成分节的叙述文本，供分析请求直接嵌入
func formatProfile(data profileData) string {
	var b strings.Builder

	fullName := strings.TrimSpace(orDefault(data.FirstName, "No first name") + " " + orDefault(data.LastName, "No last name"))
	fmt.Fprintf(&b, "Name: %s\n", fullName)
	fmt.Fprintf(&b, "Headline: %s\n", orDefault(data.Headline, "No headline provided"))
	fmt.Fprintf(&b, "Location: %s\n", orDefault(data.Geo.Full, "No location provided"))
	fmt.Fprintf(&b, "Summary: %s\n", orDefault(data.Summary, "No summary provided"))

	b.WriteString("\nExperience:\n")
	for _, position := range data.Position {
		description := strings.ReplaceAll(orDefault(position.Description, "No description"), "\n", " ")
		fmt.Fprintf(&b, "- %s at %s, %s. %s\n",
			orDefault(position.Title, "No title"),
			orDefault(position.CompanyName, "No company name"),
			orDefault(position.Location, "No location"),
			description,
		)
	}

	b.WriteString("\nEducation:\n")
	for _, education := range data.Educations {
		description := strings.ReplaceAll(orDefault(education.Description, "No description"), "\n", " ")
		fmt.Fprintf(&b, "- %s in %s from %s, Grade: %s. %s\n",
			orDefault(education.Degree, "No degree"),
			orDefault(education.FieldOfStudy, "No field of study"),
			orDefault(education.SchoolName, "No school name"),
			orDefault(education.Grade, "No grade"),
			description,
		)
	}

	b.WriteString("\nSkills:\n")
	for _, skill := range data.Skills {
		fmt.Fprintf(&b, "- %s\n", orDefault(skill.Name, "No skill name"))
	}

	b.WriteString("\nLanguages:\n")
	for _, language := range data.Languages {
		fmt.Fprintf(&b, "- %s (%s)\n",
			orDefault(language.Name, "No language name"),
			orDefault(language.Proficiency, "No proficiency level"),
		)
	}

	b.WriteString("\nCertifications:\n")
	for _, certification := range data.Certifications {
		fmt.Fprintf(&b, "- %s\n", orDefault(certification.Name, "No certification name"))
	}

	return b.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
