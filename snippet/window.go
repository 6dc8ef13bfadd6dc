package snippet

// resolvedWindow is the final line range consumed by materialization.
// Computed fresh per request and never mutated afterwards.
type resolvedWindow struct {
	startLine int
	endLine   int
}

func (w resolvedWindow) length() int {
	return w.endLine - w.startLine + 1
}

// compensateWindow computes the excerpt window around targetLine. Radius
// clipped at one file boundary is redistributed to the opposite side, so the
// window covers 2*contextRadius+1 lines whenever the file is long enough.
func compensateWindow(targetLine int, contextRadius int, totalLines int) resolvedWindow {
	naiveStart := targetLine - contextRadius
	naiveEnd := targetLine + contextRadius

	clippedStart := naiveStart
	if clippedStart < 1 {
		clippedStart = 1
	}
	unusedAbove := clippedStart - naiveStart

	clippedEnd := naiveEnd
	if clippedEnd > totalLines {
		clippedEnd = totalLines
	}
	unusedBelow := naiveEnd - clippedEnd

	startLine := clippedStart - unusedBelow
	if startLine < 1 {
		startLine = 1
	}

	endLine := clippedEnd + unusedAbove
	if endLine > totalLines {
		endLine = totalLines
	}

	return resolvedWindow{startLine: startLine, endLine: endLine}
}

// negotiateExpansion decides whether to pull the window start back to a
// declaration header located above it. The total excerpt size stays within
// 2*contextRadius+1 lines: showing more leading context costs trailing
// context. When fewer than min(3, contextRadius) trailing lines would remain,
// the header is abandoned in favor of the centered window.
func negotiateExpansion(window resolvedWindow, signatureLine int, targetLine int, contextRadius int, totalLines int) resolvedWindow {
	if signatureLine >= window.startLine {
		// Header already visible, nothing to do.
		return window
	}

	budget := 2 * contextRadius
	linesAbove := targetLine - signatureLine
	linesBelow := budget - linesAbove

	minBelow := 3
	if contextRadius < minBelow {
		minBelow = contextRadius
	}

	if linesBelow < minBelow {
		return window
	}

	endLine := targetLine + linesBelow
	if endLine > totalLines {
		endLine = totalLines
	}

	return resolvedWindow{startLine: signatureLine, endLine: endLine}
}
