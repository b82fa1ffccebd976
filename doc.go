// SPDX-License-Identifier: MIT
// Package kinship is an in-memory family registry: declare members and
// parent/child relations, then walk generation lines and print family trees.
//
// 🌳 What is kinship?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Core primitives: members identified by normalized codes, symmetric parent/child index
//		• Generation lines: ancestors and descendants layered nearest-first
//		• Trees: labeled sections (Parents, Grandparents, …) and the markup PrintTree
//		• Cycle handling: optional guard per walk, whole-graph cycle listing
//		• Presentations: markup, text, lipgloss-styled terminal output, YAML
//		• Family files: declarative YAML applied to a registry
//
// Layout:
//
//	core/        — Registry, Member, Kind, lineage walk, cycles, Tree
//	render/      — alternative presentations of a core.Tree
//	loader/      — YAML family files and the embedded sample family
//	cmd/kinship/ — cobra CLI (tree, line, members, cycles, version)
//
// Quick example:
//
//	Maria Herrera
//	    └── Jesus Garcia
//	          └── Isidro Garcia
//	                ├── Norelis Santander
//	                └── Antonio Garcia
//
//	r := core.NewRegistry()
//	r.Get("Jesus Garcia").AddParent("Maria Herrera")
//	gens, _ := r.Get("Maria Herrera").Descendants()
//
//	go install github.com/katalvlaran/kinship/cmd/kinship@latest
package kinship
