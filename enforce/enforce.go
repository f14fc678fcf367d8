package enforce

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

func init() {
	checkCompiler()
}

// ENFORCE halts the program when an internal invariant does not hold.
// A failure here is a bug in the library, not a recoverable input error.
func ENFORCE(query interface{}, args ...interface{}) {
	switch t := query.(type) {
	case bool:
		if !t {
			log.Panic().Msg("ENFORCE: " + fmt.Sprint(args...))
		}
	case error:
		if t != nil {
			log.Panic().Err(t).Msg("ENFORCE: " + fmt.Sprint(args...))
		}
	case nil:
		// Allow nil to pass since we sometimes do enforce.ENFORCE(err) to ensure there is no error
	default:
		log.Panic().Msg("ENFORCE: incorrect usage with type: " + fmt.Sprintf("%T", t) + " - " + fmt.Sprint(args...))
	}
}

// checkCompiler enforces a 64bit machine due to assumptions about sizeof(int).
func checkCompiler() {
	myint := int(math.MaxInt64) // Shouldn't compile on a 32 bit system.
	myint64 := int64(math.MaxInt64)
	ENFORCE(uint64(myint) == uint64(myint64), "Must be on 64 bit system.")
}
