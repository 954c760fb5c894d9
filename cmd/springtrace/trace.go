package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/db47h/chasecam/spring"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	settledStyle = cellStyle.
			Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"})
)

type sample struct {
	step int
	pos  mgl32.Vec3
	dist float32
}

// trace steps start toward target until it stops moving or maxSteps steps
// have been taken. The first sample is the start position.
//
func trace(f spring.Follower, start, target mgl32.Vec3, dt float32, maxSteps int) []sample {
	s := []sample{{0, start, target.Sub(start).Len()}}
	cur := start
	for i := 1; i <= maxSteps; i++ {
		next := f.Step(cur, target, dt)
		if next == cur {
			break
		}
		cur = next
		s = append(s, sample{i, cur, target.Sub(cur).Len()})
	}
	return s
}

// render formats every nth sample as a table. The last sample is always
// included.
//
func render(s []sample, every int, deadZone float32) string {
	if every < 1 {
		every = 1
	}
	var rows [][]string
	for i, v := range s {
		if i%every != 0 && i != len(s)-1 {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(v.step),
			fmt.Sprintf("%.5f", v.pos[0]),
			fmt.Sprintf("%.5f", v.pos[1]),
			fmt.Sprintf("%.5f", v.pos[2]),
			fmt.Sprintf("%.6f", v.dist),
		})
	}
	settled := func(row int) bool {
		d, err := strconv.ParseFloat(rows[row][4], 32)
		return err == nil && float32(d) < deadZone
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("step", "x", "y", "z", "distance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && settled(row):
				return settledStyle
			}
			return cellStyle
		})
	return t.String()
}

// parseVec parses a comma separated triplet such as "0,2,-3".
//
func parseVec(s string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	f := strings.Split(s, ",")
	if len(f) != 3 {
		return v, errors.Errorf("invalid vector %q: expected x,y,z", s)
	}
	for i := range f {
		x, err := strconv.ParseFloat(strings.TrimSpace(f[i]), 32)
		if err != nil {
			return v, errors.Wrapf(err, "invalid vector %q", s)
		}
		v[i] = float32(x)
	}
	return v, nil
}
