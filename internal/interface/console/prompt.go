package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func (c *Console) print(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) readLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		c.readErr = err
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *Console) promptString(label string) string {
	c.print("%s: ", label)
	return c.readLine()
}

// promptInt aborts the current operation on malformed input rather than
// re-prompting; the error message is printed by the caller's flow.
func (c *Console) promptInt(label string) (int, error) {
	raw := c.promptString(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	return n, nil
}

func (c *Console) promptFloat(label string) (float64, error) {
	raw := c.promptString(label)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a decimal number", raw)
	}
	return f, nil
}

func (c *Console) promptDate(label string) (time.Time, error) {
	raw := c.promptString(label + " (YYYY-MM-DD)")
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a date in YYYY-MM-DD form", raw)
	}
	return t, nil
}
