// Package llm is the boundary to the remote text-completion service that
// writes health advice. It supports OpenAI and Anthropic, and an unavailable
// client that stands in when no credential is configured.
package llm
