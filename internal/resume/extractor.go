package resume

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"

	"resume-extract/internal/nlp"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b(?:\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`)

	// Delimiters used to split a retrieval answer into skill fragments
	answerDelimiters = regexp.MustCompile(`[,\n•-]`)
)

// Kept deliberately small for speed; entity and retrieval extraction cover
// everything outside this vocabulary.
var skillKeywords = []string{
	"python", "java", "javascript", "react", "node.js", "sql",
	"aws", "azure", "gcp", "docker", "kubernetes", "tensorflow",
	"pytorch", "pandas", "numpy", "flask", "django",
}

// Checked in this order; the first header found wins.
var experienceHeaders = []string{"experience", "work experience", "professional experience"}

const skillQuery = "List the technical skills mentioned in this resume."

// experienceSnippetLen caps how much text one header match contributes.
const experienceSnippetLen = 1000

// Answerer is the optional retrieval capability: it answers a query grounded
// in the given text. Absent when retrieval is disabled.
type Answerer interface {
	Answer(ctx context.Context, query, text string) (string, error)
}

// Extractor turns raw resume text into a structured Record. The NLP and
// retrieval capabilities are fixed at construction; either may be a no-op.
type Extractor struct {
	nlp       nlp.Engine
	retrieval Answerer
}

func NewExtractor(engine nlp.Engine, retrieval Answerer) *Extractor {
	if engine == nil {
		engine = nlp.Blank{}
	}
	return &Extractor{nlp: engine, retrieval: retrieval}
}

// ParseResume returns nil for empty input, otherwise delegates to
// ExtractInformation.
func (e *Extractor) ParseResume(ctx context.Context, text string) *Record {
	if text == "" {
		return nil
	}
	return e.ExtractInformation(ctx, text)
}

// ExtractInformation applies each extraction step independently; a failing
// step contributes nothing and never aborts the others. It does not return
// an error.
func (e *Extractor) ExtractInformation(ctx context.Context, text string) *Record {
	skills := make(map[string]struct{})
	education := make(map[string]struct{})
	var experience []string
	var contact Contact

	// Simple contact extraction, first match wins
	contact.Email = emailPattern.FindString(text)
	contact.Phone = phonePattern.FindString(text)

	// Keyword-based skills
	lower := strings.ToLower(text)
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			skills[kw] = struct{}{}
		}
	}

	// NER-based skills and education
	doc, err := e.nlp.Process(ctx, text)
	if err != nil {
		log.Printf("[Extract] NER failed, skipping entity extraction: %v", err)
	} else {
		for _, ent := range doc.Entities {
			if ent.Label == nlp.LabelOrg || ent.Label == nlp.LabelProduct {
				skills[ent.Text] = struct{}{}
			}
			if ent.Label == nlp.LabelOrg && looksLikeSchool(ent.Text) {
				education[ent.Text] = struct{}{}
			}
		}
	}

	// Experience heuristic: slice after the first known section header
	for _, header := range experienceHeaders {
		idx := strings.Index(lower, header)
		if idx < 0 {
			continue
		}
		end := idx + experienceSnippetLen
		if end > len(text) {
			end = len(text)
		}
		experience = append(experience, strings.TrimSpace(text[idx:end]))
		break
	}

	// Retrieval-augmented skills, fully optional
	if e.retrieval != nil {
		e.augmentSkills(ctx, text, skills)
	}

	return &Record{
		RawText:    text,
		Skills:     setToSlice(skills),
		Education:  setToSlice(education),
		Experience: experience,
		Contact:    contact,
	}
}

// augmentSkills asks the retrieval backend for skills and merges the answer
// fragments into the skill set. Any failure is swallowed; the rest of the
// result is unaffected.
func (e *Extractor) augmentSkills(ctx context.Context, text string, skills map[string]struct{}) {
	answer, err := e.retrieval.Answer(ctx, skillQuery, text)
	if err != nil {
		log.Printf("[Extract] Retrieval query failed, skipping: %v", err)
		return
	}
	for _, fragment := range answerDelimiters.Split(answer, -1) {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			skills[fragment] = struct{}{}
		}
	}
}

// crude check for education-looking orgs
func looksLikeSchool(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range []string{"university", "college", "institute"} {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
