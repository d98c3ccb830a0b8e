// Command zero-trust is the command-line entry point of the Zero-Trust AI
// framework.
//
// The framework is pre-alpha: the command reports build and roadmap
// information and manages configuration. Agent evaluation commands arrive
// with Stage 1.
//
// Usage:
//
//	# Show version information
//	zero-trust version
//
//	# List the delivery stages and their status
//	zero-trust roadmap
//
//	# Print the resolved configuration as YAML
//	zero-trust config show -o yaml
//
//	# Validate a configuration file
//	zero-trust config validate --config zero-trust.yaml
//
// For complete documentation, see: https://zero-trust.ai/docs
package main

func main() {
	Execute()
}
