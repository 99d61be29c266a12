package editor

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
)

// IDGenerator mints item identifiers. Every id must be unique and never
// handed out twice.
type IDGenerator interface {
	NextID() string
}

// SnowflakeIDs issues time-ordered Snowflake ids. Safe for concurrent use.
type SnowflakeIDs struct {
	node *snowflake.Node
}

// NewSnowflakeIDs returns a generator for the given node (0–1023).
func NewSnowflakeIDs(node int64) (*SnowflakeIDs, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", node, err)
	}
	return &SnowflakeIDs{node: n}, nil
}

// NewSnowflakeIDsFromNode wraps an existing node.
func NewSnowflakeIDsFromNode(n *snowflake.Node) *SnowflakeIDs {
	return &SnowflakeIDs{node: n}
}

// NextID returns the next id as a decimal string.
func (s *SnowflakeIDs) NextID() string {
	return s.node.Generate().String()
}

// SequentialIDs issues "1", "2", … and is meant for tests and fixtures.
type SequentialIDs struct {
	n atomic.Int64
}

// NextID returns the next integer as a string.
func (s *SequentialIDs) NextID() string {
	return strconv.FormatInt(s.n.Add(1), 10)
}
