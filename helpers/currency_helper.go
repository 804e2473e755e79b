package helpers

import "fmt"

// FormatPence renders an amount of pence as a pound string, e.g. 4779
// becomes "£47.79". Negative amounts keep the sign ahead of the symbol.
func FormatPence(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s£%d.%02d", sign, pence/100, pence%100)
}
