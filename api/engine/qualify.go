/* qualify.go
 * Contains qualifier count parsing and the automatic qualification rule
 */

package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultQualifyFraction drives the automatic group -> knockout transition
// once every group match has a result. The admin start command takes its own
// spec and is not required to agree with this value.
const DefaultQualifyFraction = 2.0 / 3.0

// ParseQualifySpec converts a qualifier count spec into a team count. The
// spec is an integer ("4"), a fraction ("2/3") or a decimal ("0.5");
// fractional specs are applied to total and floored. The count must be at
// least 1 and is clamped to total.
func ParseQualifySpec(spec string, total int) (int, error) {
	spec = strings.TrimSpace(spec)

	var count int
	switch {
	case strings.Contains(spec, "/"):
		parts := strings.SplitN(spec, "/", 2)
		num, errNum := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		den, errDen := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errNum != nil || errDen != nil || den == 0 {
			return 0, invalidQualifySpec(spec)
		}
		count = int(math.Floor(num / den * float64(total)))
	case strings.Contains(spec, "."):
		q, err := strconv.ParseFloat(spec, 64)
		if err != nil {
			return 0, invalidQualifySpec(spec)
		}
		count = int(math.Floor(q * float64(total)))
	default:
		n, err := strconv.Atoi(spec)
		if err != nil {
			return 0, invalidQualifySpec(spec)
		}
		count = n
	}

	if count < 1 {
		return 0, fmt.Errorf("at least one team must qualify")
	}
	if count > total {
		count = total
	}
	return count, nil
}

// AutoQualifyCount applies DefaultQualifyFraction to the group size, floored,
// never below one team.
func AutoQualifyCount(total int) int {
	count := int(math.Floor(DefaultQualifyFraction * float64(total)))
	if count < 1 {
		count = 1
	}
	return count
}

func invalidQualifySpec(spec string) error {
	return fmt.Errorf("invalid qualifier count %q: enter an integer, a fraction like '2/3', or a decimal like '0.5'", spec)
}
