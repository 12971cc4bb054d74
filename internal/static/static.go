// Package static holds files embedded into the binary.
package static

import _ "embed"

//go:embed skill.md
var SkillMD []byte

//go:embed index.html.tmpl
var IndexTemplate string
