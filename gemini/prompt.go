package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/jobscan"
	"google.golang.org/genai"
)

// maxPromptContent caps the amount of posting text sent to the model.
// Postings longer than this carry boilerplate, not signal.
const maxPromptContent = 15000

const systemPrompt = `You are an expert recruiter and ATS (Applicant Tracking System) analyst. You extract structured information from job postings. Answer based only on the posting provided. Respond with a single JSON object and nothing else, using this exact schema:
{
  "job_title": string,
  "company": string,
  "job_summary": string,
  "responsibilities": [string],
  "hard_skills": [string],
  "soft_skills": [string],
  "ats_keywords": [string],
  "inferred_skills": [string],
  "seniority_level": string,
  "years_of_experience": string
}
Use "" for string fields and [] for list fields that cannot be determined from the posting. Do not invent requirements the posting does not state; inferred_skills is the only field for skills implied but not named.`

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: systemPrompt,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the extracted posting.
func BuildUserPrompt(result *jobscan.ExtractionResult) string {
	content := result.Content.Text
	if len(content) > maxPromptContent {
		content = content[:maxPromptContent]
	}

	var sb strings.Builder
	sb.WriteString("<posting>\n")
	if result.Title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", result.Title)
	}
	if result.Company != "" {
		fmt.Fprintf(&sb, "<company>%s</company>\n", result.Company)
	}
	if result.FinalURL != "" {
		fmt.Fprintf(&sb, "<source>%s</source>\n", result.FinalURL)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	sb.WriteString("</posting>\n\n")
	sb.WriteString("Analyze this job posting.")
	return sb.String()
}
