package services_test

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"foodies/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumberGenerator_Next(t *testing.T) {
	fixed := time.UnixMilli(1760443200123)
	gen := services.NewOrderNumberGenerator(func() time.Time { return fixed })

	number := gen.Next()

	assert.Regexp(t, regexp.MustCompile(`^ORD1760443200123\d{3}$`), number)
}

func TestOrderNumberGenerator_ZeroValue(t *testing.T) {
	assert.Regexp(t, `^ORD\d{16}$`, services.OrderNumberGenerator{}.Next())
}

func TestOrderNumberGenerator_NilClock(t *testing.T) {
	before := time.Now().UnixMilli()

	number := services.NewOrderNumberGenerator(nil).Next()

	assert.Regexp(t, `^ORD\d{16}$`, number)
	millis, err := strconv.ParseInt(number[3:16], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
}
