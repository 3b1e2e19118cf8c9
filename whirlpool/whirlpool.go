package whirlpool

import (
	"git.gammaspectra.live/P2Pool/whirlpool/types"
	"git.gammaspectra.live/P2Pool/whirlpool/utils"
)

// Sum returns the Whirlpool digest of data.
func Sum(data []byte) types.Hash {
	var d Digest
	_, _ = d.Write(data)
	return d.checkSum()
}

// SumVar returns the Whirlpool digest of the concatenation of data.
func SumVar[T ~string | ~[]byte](data ...T) types.Hash {
	var d Digest
	for _, b := range data {
		_, _ = d.Write([]byte(b))
	}
	return d.checkSum()
}

// SumMany hashes each input independently across routines goroutines.
// Results are in input order.
func SumMany(routines int, inputs [][]byte) ([]types.Hash, error) {
	results := make([]types.Hash, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	err := utils.SplitWork(routines, uint64(len(inputs)), func(workIndex uint64, routineIndex int) error {
		results[workIndex] = Sum(inputs[workIndex])
		return nil
	}, func(routines, routineIndex int) error {
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
