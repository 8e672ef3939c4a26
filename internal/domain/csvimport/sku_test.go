package csvimport_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/multistore-api/internal/domain/csvimport"
)

func TestGenerateSKU_Deterministico(t *testing.T) {
	seq := []int{10, 0, 35, 1}
	i := 0
	next := func(n int) int {
		v := seq[i%len(seq)]
		i++
		return v
	}
	assert.Equal(t, "ORGANIC--A0Z1", csvimport.GenerateSKU("Organic Apples", next))
}

func TestGenerateSKU_NombreCorto(t *testing.T) {
	sku := csvimport.GenerateSKU("Tè", func(int) int { return 0 })
	assert.Equal(t, "T--0000", sku)
}

func TestGenerateSKU_Formato(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9-]{1,8}-[0-9A-Z]{4}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, csvimport.GenerateSKU("Frankferd Farms Oats", nil))
	}
}
