package id

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Node ids per process. Two processes sharing a node id can mint duplicates.
const (
	NodeServer int64 = 1
	NodeWorker int64 = 2
	NodeCLI    int64 = 3
)

var ErrInvalid = errors.New("invalid id")

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// Only the first call has an effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new time-ordered int64 ID.
func New() int64 {
	return node.Generate().Int64()
}

// Parse converts the decimal string form used in JSON payloads and URLs back to an id.
func Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return v, nil
}

func String(v int64) string {
	return strconv.FormatInt(v, 10)
}
