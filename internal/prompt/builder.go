// Package prompt deterministically serializes a frame comparison into the
// request text for the text-generation service. The builder never invokes
// the service itself; identical inputs always produce byte-identical text.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poseform/coach/pkg/core"
)

// instructionBlock is the fixed trailing directive for the generator.
const instructionBlock = `Instructions:
1. If any single coordinate is an extreme outlier relative to the rest of its own snapshot, treat it as a likely pose-detection error: mention that the joint was probably mis-detected and do not comment on any angle touching that joint.
2. For every deviation listed as "undefined", use the connection endpoint mapping and the landmark vocabulary to name the specific joint or joints that were not detected, and explain that the angle could not be measured because of them.
3. Otherwise, describe which body parts the practicing dancer needs to adjust and in which direction, give concrete coaching tips for getting closer to the reference pose, and close with an encouraging remark.`

// Build produces the complete request text for one comparison.
func Build(cmp core.Comparison, reference, practice core.Frame) string {
	var b strings.Builder
	conns := core.Connections()

	fmt.Fprintf(&b, "Pose comparison between reference frame %q and practice frame %q.\n\n", reference.ID, practice.ID)
	fmt.Fprintf(&b, "Overall accuracy score: %.1f out of 100.\n\n", cmp.Accuracy)

	b.WriteString("Per-connection angle deviations (practice minus reference, in degrees):\n")
	for i, conn := range conns {
		if i < len(cmp.Deltas) && cmp.Deltas[i].Numeric() {
			fmt.Fprintf(&b, "- %s to %s: %.2f\n", conn.Start, conn.End, cmp.Deltas[i].Degrees)
		} else {
			fmt.Fprintf(&b, "- %s to %s: undefined\n", conn.Start, conn.End)
		}
	}
	b.WriteString("\n")

	b.WriteString("Connection endpoint mapping:\n")
	for i, conn := range conns {
		fmt.Fprintf(&b, "- connection %d: %s to %s\n", i, conn.Start, conn.End)
	}
	b.WriteString("\n")

	writeSnapshot(&b, "Reference frame coordinates:", reference.Snapshot)
	writeSnapshot(&b, "Practice frame coordinates:", practice.Snapshot)

	b.WriteString("Landmark vocabulary:\n")
	for _, lm := range core.Landmarks() {
		fmt.Fprintf(&b, "- %d: %s\n", int(lm), lm)
	}
	b.WriteString("\n")

	b.WriteString(instructionBlock)
	b.WriteString("\n")

	return b.String()
}

// writeSnapshot serializes one snapshot's raw coordinates in landmark
// order, exactly as stored (no rounding).
func writeSnapshot(b *strings.Builder, header string, snap core.Snapshot) {
	b.WriteString(header)
	b.WriteString("\n")
	for _, lm := range core.Landmarks() {
		pt, ok := snap[lm]
		if !ok {
			fmt.Fprintf(b, "- %s: not detected\n", lm)
			continue
		}
		fmt.Fprintf(b, "- %s: (%s, %s)\n", lm, formatCoord(pt.X), formatCoord(pt.Y))
	}
	b.WriteString("\n")
}

// formatCoord renders a coordinate with the shortest representation that
// parses back to the identical float64.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
