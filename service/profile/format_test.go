package profile

import (
	"strings"
	"testing"
)

func TestFormatProfileSections(t *testing.T) {
	data := profileData{
		FirstName: "Jane",
		LastName:  "Doe",
		Headline:  "Software Engineer",
		Summary:   "Builds things.",
	}
	data.Geo.Full = "Berlin, Germany"
	data.Position = []struct {
		CompanyName string `json:"companyName"`
		Title       string `json:"title"`
		Location    string `json:"location"`
		Description string `json:"description"`
	}{
		{CompanyName: "Acme", Title: "Engineer", Location: "Berlin", Description: "Shipped\nstuff"},
	}
	data.Skills = []struct {
		Name string `json:"name"`
	}{
		{Name: "Go"},
	}

	text := formatProfile(data)

	if !strings.HasPrefix(text, "Name: Jane Doe\n") {
		t.Fatalf("unexpected prefix: %q", text[:30])
	}
	for _, section := range []string{"Headline: Software Engineer", "Location: Berlin, Germany", "\nExperience:\n", "\nEducation:\n", "\nSkills:\n", "\nLanguages:\n", "\nCertifications:\n"} {
		if !strings.Contains(text, section) {
			t.Fatalf("missing section %q", section)
		}
	}
	if strings.Contains(text, "Shipped\nstuff") {
		t.Fatal("newlines in descriptions must be flattened")
	}
	if !strings.Contains(text, "- Engineer at Acme, Berlin. Shipped stuff") {
		t.Fatalf("unexpected experience line:\n%s", text)
	}
}

func TestFormatProfileDefaults(t *testing.T) {
	text := formatProfile(profileData{})

	if !strings.Contains(text, "No headline provided") {
		t.Fatal("missing headline default")
	}
	if !strings.Contains(text, "No summary provided") {
		t.Fatal("missing summary default")
	}
}
