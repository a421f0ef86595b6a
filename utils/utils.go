package utils

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
)

// Timer prints how long name took once the returned func is called.
//
//	defer utils.Timer(os.Stdout, "probe")()
func Timer(w io.Writer, name string) func() {
	start := time.Now()
	return func() {
		message := fmt.Sprintf("⏱️ %s finished in %v", name, time.Since(start).Round(time.Millisecond))
		fmt.Fprintln(w, aurora.White(message))
	}
}

// StatusColor picks a terminal color for an HTTP status.
func StatusColor(status int) aurora.Color {
	switch {
	case status >= 500:
		return aurora.RedFg
	case status >= 400:
		return aurora.YellowFg
	case status >= 200 && status < 300:
		return aurora.GreenFg
	default:
		return aurora.CyanFg
	}
}
