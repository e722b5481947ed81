// Package words holds the categorized word pools and hands out random
// selections. Pools are immutable after Load; embedded defaults keep the
// server runnable when no word files are configured.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

//go:embed easy.txt
var embeddedEasy string

//go:embed medium.txt
var embeddedMedium string

//go:embed hard.txt
var embeddedHard string

type Bank struct {
	pools map[Tier][]string
}

// Load builds the bank. When dir is non-empty, <dir>/<tier>.txt overrides
// that tier's pool (one word per line); missing files fall back to the
// embedded defaults.
func Load(dir string) (*Bank, error) {
	pools := map[Tier][]string{
		TierEasy:   normalizeLines(embeddedEasy),
		TierMedium: normalizeLines(embeddedMedium),
		TierHard:   normalizeLines(embeddedHard),
	}

	if dir != "" {
		for tier := range pools {
			path := filepath.Join(dir, string(tier)+".txt")
			list, err := readWordFile(path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if len(list) > 0 {
				pools[tier] = list
			}
		}
	}

	for tier, pool := range pools {
		if len(pool) == 0 {
			return nil, errors.New("words: empty pool for tier " + string(tier))
		}
	}
	return &Bank{pools: pools}, nil
}

// RandomWord returns one uniform pick from the tier's pool.
func (b *Bank) RandomWord(tier Tier) string {
	pool := b.pool(tier)
	return pool[rand.Intn(len(pool))]
}

// Words returns up to count distinct words from the tier's pool.
func (b *Bank) Words(count int, tier Tier) []string {
	pool := b.pool(tier)
	idx := rand.Perm(len(pool))
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]string, 0, count)
	for _, i := range idx[:count] {
		out = append(out, pool[i])
	}
	return out
}

func (b *Bank) pool(tier Tier) []string {
	if pool, ok := b.pools[tier]; ok {
		return pool
	}
	return b.pools[TierEasy]
}

// TierForMode maps a game mode to a difficulty tier. Every mode currently
// draws from the easy pool; the full mapping never shipped.
func TierForMode(mode string) Tier {
	return TierEasy
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			list = append(list, strings.ToLower(w))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func normalizeLines(raw string) []string {
	var list []string
	for _, line := range strings.Split(raw, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			list = append(list, strings.ToLower(w))
		}
	}
	return list
}
