// Package zerotrust is the root of the Zero-Trust AI framework, an open-source
// framework for building secure AI agents with zero-trust principles.
//
// The framework is pre-alpha. This package currently exposes release metadata
// only:
//
//	fmt.Println(zerotrust.Version) // 0.1.0-dev
//	info := zerotrust.Info()
//
// The Guardian evaluation engine, the MCP security layer, RAG-sourced policies
// and multi-agent security are tracked as later stages of the roadmap and are
// not part of this release. Run `zero-trust roadmap` to list them.
package zerotrust
