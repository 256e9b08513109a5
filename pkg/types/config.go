// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NotionConfig holds settings for the Notion content source.
type NotionConfig struct {
	// Token is the integration token used to authenticate API calls.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// ProjectsDB is the database ID holding project records.
	ProjectsDB string `json:"projects_db" yaml:"projects_db"`

	// GlossaryDB is the database ID holding glossary definitions.
	GlossaryDB string `json:"glossary_db" yaml:"glossary_db"`

	// FAQDB is the database ID holding FAQ entries.
	FAQDB string `json:"faq_db" yaml:"faq_db"`
}

// OutputConfig holds the output file paths and link target for a run.
// Paths are relative to the working directory and overwritten each run.
type OutputConfig struct {
	// GlossaryPath is where the glossary partial is written.
	GlossaryPath string `json:"glossary_path" yaml:"glossary_path"`

	// FAQPath is where the FAQ partial is written.
	FAQPath string `json:"faq_path" yaml:"faq_path"`

	// GlossaryPage is the site path cross-references link to,
	// e.g. "/docs/glossary" yields links of the form
	// "/docs/glossary#anchor-key".
	GlossaryPage string `json:"glossary_page" yaml:"glossary_page"`
}

// PipelineConfig groups all settings for one sync run.
type PipelineConfig struct {
	// Project is the name of the project whose content is synced.
	Project string `json:"project" yaml:"project"`

	Notion NotionConfig `json:"notion" yaml:"notion"`
	Output OutputConfig `json:"output" yaml:"output"`
}
