package config

// Provider types
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderLangChain = "langchain"
)

// Prompt templates. The expression is substituted verbatim for %s.
const (
	SystemPrompt         = "You are a helpful assistant."
	EvaluatePromptFormat = "Calculate the following and return only the result, without any additional explanation or text: %s"
	ExplainPromptFormat  = "Explain the following result step by step: %s"
	IntegralFormat       = "∫(%s) from %s to %s"
)

// Display labels
const (
	LabelPlaceholder    = "Result"
	LabelPromptForInput = "Please enter an expression."
	PrefixResult        = "Result: "
	PrefixExplanation   = "Explanation: "
	PrefixIntegral      = "Integral Result: "
	PrefixError         = "Error: "
)

// Window text
const (
	WindowTitle         = "OpenAI Calculator"
	ExplainButtonLabel  = "Explain Me"
	IntegralDialogTitle = "Enter Integral Details"
)

// Provider error body paths probed for a human-readable message, most specific first.
var ProviderErrorMessagePaths = []string{
	"error.message",
	"message",
	"error",
	"detail",
	"details.0.message",
}
