// Package providers contains narrative generator clients for Groq, OpenAI,
// Anthropic, Gemini, and Ollama/LM Studio behind the Narrator interface.
//
// Each client is a thin HTTP wrapper with provider-specific auth and wire
// formats, exponential backoff on rate limits and server errors, and typed
// auth errors detectable via IsAuthError. Groq, Ollama, and LM Studio share
// the OpenAI-compatible chat-completions format.
//
// The explanation engine treats any narrator failure as a signal to fall
// back to local templated text; these clients never need to succeed for the
// tool to work.
package providers
