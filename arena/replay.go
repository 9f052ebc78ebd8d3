package arena

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/game"
)

const DefaultBufferCapacity = 100000

// Sample pairs a position's feature planes with the move index the expert
// chose there.
type Sample struct {
	Planes [2][game.BoardSize][game.BoardSize]float32
	Action int
}

// ReplayBuffer is a bounded sample store that evicts its oldest entries
// once full.
type ReplayBuffer struct {
	capacity int
	samples  []Sample
	head     int
	rng      *rand.Rand
}

func NewReplayBuffer(capacity int) *ReplayBuffer {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	return &ReplayBuffer{
		capacity: capacity,
		rng:      rand.New(rand.NewSource(rand.Uint64())),
	}
}

// Seed fixes the sampling order.
func (b *ReplayBuffer) Seed(seed uint64) {
	b.rng = rand.New(rand.NewSource(seed))
}

func (b *ReplayBuffer) Add(sample Sample) {
	if len(b.samples) < b.capacity {
		b.samples = append(b.samples, sample)
		return
	}
	b.samples[b.head] = sample
	b.head = (b.head + 1) % b.capacity
}

func (b *ReplayBuffer) Len() int {
	return len(b.samples)
}

// Sample draws up to batchSize entries without replacement.
func (b *ReplayBuffer) Sample(batchSize int) []Sample {
	k := batchSize
	if k > len(b.samples) {
		k = len(b.samples)
	}
	if k <= 0 {
		return nil
	}

	batch := make([]Sample, 0, k)
	for _, i := range b.rng.Perm(len(b.samples))[:k] {
		batch = append(batch, b.samples[i])
	}
	return batch
}

func (b *ReplayBuffer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay buffer file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(b.samples); err != nil {
		return fmt.Errorf("failed to encode replay buffer: %w", err)
	}
	log.Info().Msgf("saved replay buffer to %s (size=%d)", path, len(b.samples))
	return nil
}

func (b *ReplayBuffer) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open replay buffer file: %w", err)
	}
	defer f.Close()

	var samples []Sample
	if err := gob.NewDecoder(f).Decode(&samples); err != nil {
		return fmt.Errorf("failed to decode replay buffer: %w", err)
	}
	// Keep only the newest entries when the file is over capacity.
	if len(samples) > b.capacity {
		samples = samples[len(samples)-b.capacity:]
	}
	b.samples = samples
	b.head = 0
	log.Info().Msgf("loaded replay buffer from %s (size=%d)", path, len(b.samples))
	return nil
}
