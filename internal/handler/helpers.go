package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type keyValue struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// publishedQuery reads an optional published=true|false filter.
func publishedQuery(c *gin.Context) *bool {
	switch c.Query("published") {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

func yearQuery(c *gin.Context) int {
	y, _ := strconv.Atoi(c.Query("year"))
	return y
}

// duplicateKey returns the first repeated key in the pair list, or "".
func duplicateKey(pairs []keyValue) string {
	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if seen[p.Key] {
			return p.Key
		}
		seen[p.Key] = true
	}
	return ""
}
