package cli

import "strings"

// plotSamples draws a waveform as a character grid for terminal preview.
// The vertical axis spans [-1, 1]; each column shows the sample nearest
// to it, so any sample count fits any terminal width.
func plotSamples(samples []float64, width, height int) string {
	if len(samples) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	midRow := (height - 1) / 2
	for c := 0; c < width; c++ {
		if grid[midRow][c] == ' ' {
			grid[midRow][c] = '·'
		}
	}

	for col := 0; col < width; col++ {
		idx := col * (len(samples) - 1) / max(width-1, 1)
		v := samples[idx]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		row := int((1 - v) / 2 * float64(height-1))
		grid[row][col] = '●'
	}

	var b strings.Builder
	for r, line := range grid {
		b.WriteString(string(line))
		if r < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
