package services

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts/prompts.yaml
var defaultPrompts []byte

const (
	PromptSummary       = "summary"
	PromptRating        = "rating"
	PromptPersonalInfo  = "personal_info"
	PromptJobRoles      = "job_roles"
	PromptStrengths     = "strengths"
	PromptCareerTips    = "career_tips"
	PromptImprovements  = "improvements"
	PromptSpelling      = "spelling"
	PromptChatbotSystem = "chatbot_system"
	PromptJobMatch      = "job_match"
	PromptRewrite       = "rewrite"
)

const defaultChatTemperature = 0.7

var templateVarPattern = regexp.MustCompile(`\{\{-?\s*\.([A-Za-z_][A-Za-z0-9_]*)\s*-?\}\}`)

// PromptTemplate is a named prompt with the inputs it consumes and the key
// its completion is stored under.
type PromptTemplate struct {
	Name           string   `yaml:"name"`
	InputVariables []string `yaml:"input_variables"`
	OutputKey      string   `yaml:"output_key"`
	Temperature    float32  `yaml:"temperature"`
	Template       string   `yaml:"template"`

	tmpl *template.Template
}

// Render fills the template. Every declared input must be present in values.
func (t *PromptTemplate) Render(values map[string]string) (string, error) {
	for _, name := range t.InputVariables {
		if _, ok := values[name]; !ok {
			return "", fmt.Errorf("prompt %q: %w: %s", t.Name, ErrMissingField, name)
		}
	}

	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, values); err != nil {
		return "", fmt.Errorf("prompt %q: failed to render: %w", t.Name, err)
	}
	return sb.String(), nil
}

func (t *PromptTemplate) compile() error {
	if t.Name == "" {
		return errors.New("template without name")
	}
	if t.OutputKey == "" {
		return fmt.Errorf("prompt %q: output_key is required", t.Name)
	}
	if strings.TrimSpace(t.Template) == "" {
		return fmt.Errorf("prompt %q: template body is empty", t.Name)
	}
	for _, match := range templateVarPattern.FindAllStringSubmatch(t.Template, -1) {
		if !slices.Contains(t.InputVariables, match[1]) {
			return fmt.Errorf("prompt %q: variable %q is not declared in input_variables", t.Name, match[1])
		}
	}

	tmpl, err := template.New(t.Name).Option("missingkey=error").Parse(t.Template)
	if err != nil {
		return fmt.Errorf("prompt %q: %w", t.Name, err)
	}
	t.tmpl = tmpl
	return nil
}

// PromptRegistry holds the compiled prompt templates by name.
type PromptRegistry struct {
	templates map[string]*PromptTemplate
	names     []string
}

// LoadPromptRegistry parses a prompts YAML document of the form
// {templates: [{name, input_variables, output_key, temperature, template}]}.
func LoadPromptRegistry(data []byte) (*PromptRegistry, error) {
	var doc struct {
		Templates []*PromptTemplate `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, errors.New("prompts document has no templates")
	}

	registry := &PromptRegistry{templates: make(map[string]*PromptTemplate, len(doc.Templates))}
	for _, t := range doc.Templates {
		if err := t.compile(); err != nil {
			return nil, err
		}
		if _, exists := registry.templates[t.Name]; exists {
			return nil, fmt.Errorf("duplicate prompt %q", t.Name)
		}
		registry.templates[t.Name] = t
		registry.names = append(registry.names, t.Name)
	}
	return registry, nil
}

// DefaultPromptRegistry loads the prompts compiled into the binary.
func DefaultPromptRegistry() (*PromptRegistry, error) {
	return LoadPromptRegistry(defaultPrompts)
}

func (r *PromptRegistry) Get(name string) (*PromptTemplate, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("prompt %q not found", name)
	}
	return t, nil
}

// Names lists the templates in file order.
func (r *PromptRegistry) Names() []string {
	return slices.Clone(r.names)
}

// PromptBuilder renders the prompts used outside the analysis pipeline.
type PromptBuilder struct {
	registry *PromptRegistry
}

func NewPromptBuilder(registry *PromptRegistry) *PromptBuilder {
	return &PromptBuilder{registry: registry}
}

// BuildChatSystemPrompt creates the system instruction that seeds a conversation
func (pb *PromptBuilder) BuildChatSystemPrompt(resumeText string) (string, float32, error) {
	return pb.build(PromptChatbotSystem, map[string]string{"resume": resumeText})
}

// BuildJobMatchPrompt creates prompt for resume to job description matching
func (pb *PromptBuilder) BuildJobMatchPrompt(resumeText, jobDescription string) (string, float32, error) {
	return pb.build(PromptJobMatch, map[string]string{
		"resume":          resumeText,
		"job_description": jobDescription,
	})
}

// BuildRewritePrompt creates prompt for the markdown resume rewrite
func (pb *PromptBuilder) BuildRewritePrompt(resumeText string) (string, float32, error) {
	return pb.build(PromptRewrite, map[string]string{"resume": resumeText})
}

// ChatTemperature is the sampling temperature for chatbot replies.
func (pb *PromptBuilder) ChatTemperature() float32 {
	if t, err := pb.registry.Get(PromptChatbotSystem); err == nil {
		return t.Temperature
	}
	return defaultChatTemperature
}

func (pb *PromptBuilder) build(name string, values map[string]string) (string, float32, error) {
	t, err := pb.registry.Get(name)
	if err != nil {
		return "", 0, err
	}
	prompt, err := t.Render(values)
	if err != nil {
		return "", 0, err
	}
	return prompt, t.Temperature, nil
}
