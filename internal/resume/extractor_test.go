package resume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extract/internal/nlp"
)

// fakeEngine returns a fixed entity list, or an error.
type fakeEngine struct {
	entities []nlp.Entity
	err      error
}

func (f *fakeEngine) Process(ctx context.Context, text string) (*nlp.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &nlp.Document{Text: text, Entities: f.entities}, nil
}

func (f *fakeEngine) Name() string { return "fake" }

// fakeAnswerer returns a fixed answer, or an error, and counts calls.
type fakeAnswerer struct {
	answer string
	err    error
	calls  int
}

func (f *fakeAnswerer) Answer(ctx context.Context, query, text string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestParseResume_EmptyInput(t *testing.T) {
	engine := &fakeEngine{}
	e := NewExtractor(engine, nil)

	record := e.ParseResume(context.Background(), "")

	assert.Nil(t, record)
}

func TestExtractInformation_ContactInfo(t *testing.T) {
	e := NewExtractor(nlp.Blank{}, nil)

	text := "Reach me at first@example.com or second@example.com, phone (555) 123-4567."
	record := e.ExtractInformation(context.Background(), text)

	assert.Equal(t, "first@example.com", record.Contact.Email, "first match wins")
	assert.Equal(t, "(555) 123-4567", record.Contact.Phone)
}

func TestExtractInformation_NoContactInfo(t *testing.T) {
	e := NewExtractor(nlp.Blank{}, nil)

	record := e.ExtractInformation(context.Background(), "No contact details here.")

	assert.Equal(t, "", record.Contact.Email)
	assert.Equal(t, "", record.Contact.Phone)
}

func TestExtractInformation_PhoneVariants(t *testing.T) {
	e := NewExtractor(nlp.Blank{}, nil)

	for _, phone := range []string{
		"555-123-4567",
		"555.123.4567",
		"(555) 123-4567",
		"555 123 4567",
	} {
		record := e.ExtractInformation(context.Background(), "Call "+phone+" anytime.")
		assert.Equal(t, phone, record.Contact.Phone, "phone %q should match", phone)
	}
}

func TestExtractInformation_SkillKeywordsCaseInsensitive(t *testing.T) {
	e := NewExtractor(nlp.Blank{}, nil)

	record := e.ExtractInformation(context.Background(), "PYTHON, Python and python. Also Docker.")

	assert.Equal(t, []string{"docker", "python"}, record.Skills, "canonical forms, deduplicated")
}

func TestExtractInformation_NoSkills(t *testing.T) {
	e := NewExtractor(nlp.Blank{}, nil)

	record := e.ExtractInformation(context.Background(), "I enjoy gardening and long walks.")

	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Education)
}

func TestExtractInformation_Entities(t *testing.T) {
	engine := &fakeEngine{entities: []nlp.Entity{
		{Text: "University of Example", Label: nlp.LabelOrg},
		{Text: "Acme Corp", Label: nlp.LabelOrg},
		{Text: "TensorBoard", Label: nlp.LabelProduct},
		{Text: "Jane Doe", Label: "PERSON"},
	}}
	e := NewExtractor(engine, nil)

	record := e.ExtractInformation(context.Background(), "some resume text")

	assert.Contains(t, record.Skills, "University of Example", "ORG entities land in skills")
	assert.Contains(t, record.Skills, "Acme Corp")
	assert.Contains(t, record.Skills, "TensorBoard")
	assert.NotContains(t, record.Skills, "Jane Doe")
	assert.Equal(t, []string{"University of Example"}, record.Education)
}

func TestExtractInformation_EducationTermsCaseInsensitive(t *testing.T) {
	engine := &fakeEngine{entities: []nlp.Entity{
		{Text: "EXAMPLE COLLEGE", Label: nlp.LabelOrg},
		{Text: "Institute of Things", Label: nlp.LabelOrg},
	}}
	e := NewExtractor(engine, nil)

	record := e.ExtractInformation(context.Background(), "text")

	assert.ElementsMatch(t, []string{"EXAMPLE COLLEGE", "Institute of Things"}, record.Education)
}

func TestExtractInformation_NERFailureDoesNotAbort(t *testing.T) {
	engine := &fakeEngine{err: errors.New("model exploded")}
	e := NewExtractor(engine, nil)

	text := "Contact: jane@example.com. Python developer."
	record := e.ExtractInformation(context.Background(), text)

	assert.Equal(t, "jane@example.com", record.Contact.Email)
	assert.Equal(t, []string{"python"}, record.Skills)
	assert.Empty(t, record.Education)
}

func TestExtractInformation_ExperienceHeader(t *testing.T) {
	filler := strings.Repeat("x", 1500)
	text := "Intro text.\nWork Experience\n" + filler
	e := NewExtractor(nlp.Blank{}, nil)

	record := e.ExtractInformation(context.Background(), text)

	require.Len(t, record.Experience, 1)
	snippet := record.Experience[0]
	assert.LessOrEqual(t, len(snippet), 1000)
	assert.True(t, strings.HasPrefix(snippet, "Work Experience"), "snippet starts at the header")
}

func TestExtractInformation_ExperienceHeaderPriority(t *testing.T) {
	// "experience" matches first even inside "Professional Experience"
	text := "Professional Experience\nBuilt things."
	e := NewExtractor(nlp.Blank{}, nil)

	record := e.ExtractInformation(context.Background(), text)

	require.Len(t, record.Experience, 1)
	assert.True(t, strings.HasPrefix(record.Experience[0], "Experience"),
		"snippet starts at the offset of the bare 'experience' substring")
}

func TestExtractInformation_NoExperienceHeader(t *testing.T) {
	e := NewExtractor(nlp.Blank{}, nil)

	record := e.ExtractInformation(context.Background(), "Skills: python")

	assert.Empty(t, record.Experience)
}

func TestExtractInformation_RetrievalMergesSkills(t *testing.T) {
	ret := &fakeAnswerer{answer: "Go, Rust\n• Terraform\n- Ansible, , "}
	e := NewExtractor(nlp.Blank{}, ret)

	record := e.ExtractInformation(context.Background(), "plain resume text")

	assert.Equal(t, 1, ret.calls)
	assert.Contains(t, record.Skills, "Go")
	assert.Contains(t, record.Skills, "Rust")
	assert.Contains(t, record.Skills, "Terraform")
	assert.Contains(t, record.Skills, "Ansible")
}

func TestExtractInformation_RetrievalFailureSwallowed(t *testing.T) {
	ret := &fakeAnswerer{err: errors.New("backend down")}
	e := NewExtractor(nlp.Blank{}, ret)

	record := e.ExtractInformation(context.Background(), "Python and docker resume")

	assert.Equal(t, 1, ret.calls)
	assert.Equal(t, []string{"docker", "python"}, record.Skills)
}

func TestExtractInformation_RetrievalDisabled(t *testing.T) {
	e := NewExtractor(nlp.Blank{}, nil)

	text := "Python resume with jane@example.com"
	record := e.ExtractInformation(context.Background(), text)

	// Identical to what an enabled-but-unreachable backend yields
	failing := NewExtractor(nlp.Blank{}, &fakeAnswerer{err: errors.New("unreachable")})
	assert.Equal(t, failing.ExtractInformation(context.Background(), text), record)
}

func TestExtractInformation_RawTextRoundTrip(t *testing.T) {
	e := NewExtractor(nlp.Blank{}, nil)

	text := "  Exact text,\nwith whitespace preserved \t"
	record := e.ExtractInformation(context.Background(), text)

	assert.Equal(t, text, record.RawText)
}

func TestExtractInformation_EndToEnd(t *testing.T) {
	engine := &fakeEngine{entities: []nlp.Entity{
		{Text: "University of Example", Label: nlp.LabelOrg},
	}}
	e := NewExtractor(engine, nil)

	text := "Contact: jane@example.com, (555) 123-4567. Experience: Built systems using Python and Docker at University of Example."
	record := e.ExtractInformation(context.Background(), text)

	assert.Equal(t, "jane@example.com", record.Contact.Email)
	assert.Equal(t, "(555) 123-4567", record.Contact.Phone)
	assert.Subset(t, record.Skills, []string{"python", "docker"})
	assert.Contains(t, record.Education, "University of Example")

	require.Len(t, record.Experience, 1)
	idx := strings.Index(strings.ToLower(text), "experience")
	assert.True(t, strings.HasPrefix(record.Experience[0], strings.TrimSpace(text[idx:idx+10])))
}

func TestNewExtractor_NilEngineFallsBackToBlank(t *testing.T) {
	e := NewExtractor(nil, nil)

	record := e.ExtractInformation(context.Background(), "python code at jane@example.com")

	assert.Equal(t, []string{"python"}, record.Skills)
	assert.Equal(t, "jane@example.com", record.Contact.Email)
}
