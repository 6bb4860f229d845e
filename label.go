package binplot

import (
	"fmt"

	"github.com/vdobler/binplot/stat"
)

// Equation formats the summary of fit shown below the x axis, e.g.
//
//	y = 2 * x + 1 (rho=0.998)
//	y = 0.5 * x - 3.25 (rho=-0.120)
//	y = 2 * x (rho=1.000)
//
// If regression is false only the correlation is shown: "rho=0.998".
func Equation(fit stat.Fit, regression bool) string {
	if !regression {
		return fmt.Sprintf("rho=%.3f", fit.Rho)
	}

	var eq string
	switch {
	case !fit.Intercept:
		eq = fmt.Sprintf("y = %.5g * x", fit.Beta)
	case fit.Alpha < 0:
		eq = fmt.Sprintf("y = %.5g * x - %.5g", fit.Beta, -fit.Alpha)
	default:
		eq = fmt.Sprintf("y = %.5g * x + %.5g", fit.Beta, fit.Alpha)
	}
	return eq + fmt.Sprintf(" (rho=%.3f)", fit.Rho)
}

// axisLabel combines a user supplied label with the equation.
func axisLabel(label, eq string) string {
	if label == "" {
		return eq
	}
	return label + "\n" + eq
}
