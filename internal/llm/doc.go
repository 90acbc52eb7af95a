// Package llm is the adapter between the pipeline and the external reasoning
// service. It supports multiple providers including OpenAI and Anthropic, and
// owns the instruction templates, response parsing, and the documented
// fallback defaults that keep a single failed call from aborting a run.
package llm
