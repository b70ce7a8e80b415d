package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenSqliteInMemory(t *testing.T) {
	conn, driver, err := Open("", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	assert.Equal(t, "sqlite", driver)

	var one int
	if err := conn.QueryRow("SELECT 1").Scan(&one); err != nil {
		t.Fatalf("query: %v", err)
	}
	assert.Equal(t, 1, one)
}
