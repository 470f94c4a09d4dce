package classifier

import (
	"errors"
	"testing"

	"github.com/petrarca/language-detector/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLanguages() (*types.Language, *types.Language, *types.Language) {
	c := &types.Language{Name: "C", Type: types.TypeProgramming}
	cpp := &types.Language{Name: "C++", Type: types.TypeProgramming}
	objc := &types.Language{Name: "Objective-C", Type: types.TypeProgramming}
	return c, cpp, objc
}

func testModels() *ModelSet {
	return NewModelSet([]types.TokenTable{
		{
			Language: "C",
			Tokens:   map[string]int64{"printf": 40, "malloc": 30, "struct": 25, "void": 35, "include": 20},
		},
		{
			Language: "C++",
			Tokens:   map[string]int64{"std": 50, "::": 45, "template": 30, "class": 35, "namespace": 25},
		},
		{
			Language: "Objective-C",
			Tokens:   map[string]int64{"interface": 30, "NSString": 40, "alloc": 25, "@": 35},
		},
	})
}

func TestClassifyPicksBestModel(t *testing.T) {
	c, cpp, objc := testLanguages()
	clf := New(testModels(), nil)

	content := []byte("std::vector<int> v; namespace foo { class Bar {}; }")
	lang, err := clf.Classify(content, []*types.Language{c, cpp, objc})
	require.NoError(t, err)
	assert.Equal(t, "C++", lang.Name)

	content = []byte("void main() { printf(s); x = malloc(n); }")
	lang, err = clf.Classify(content, []*types.Language{c, cpp, objc})
	require.NoError(t, err)
	assert.Equal(t, "C", lang.Name)
}

func TestClassifyIgnoresCandidateOrder(t *testing.T) {
	c, cpp, objc := testLanguages()
	clf := New(testModels(), nil)
	content := []byte("@interface Foo : NSString\n[Foo alloc]\n@end")

	orders := [][]*types.Language{
		{c, cpp, objc},
		{objc, cpp, c},
		{cpp, objc, c},
	}
	for _, candidates := range orders {
		lang, err := clf.Classify(content, candidates)
		require.NoError(t, err)
		assert.Equal(t, "Objective-C", lang.Name)
	}
}

func TestClassifyNoModels(t *testing.T) {
	clf := New(testModels(), nil)
	unknown := &types.Language{Name: "Brainfuck"}

	_, err := clf.Classify([]byte("+++"), []*types.Language{unknown})
	assert.True(t, errors.Is(err, types.ErrNoMatch), "candidates without models should be unclassifiable")
}

func TestClassifySkipsUnmodeledCandidates(t *testing.T) {
	c, _, _ := testLanguages()
	unmodeled := &types.Language{Name: "Zig"}
	clf := New(testModels(), nil)

	lang, err := clf.Classify([]byte("printf void"), []*types.Language{unmodeled, c})
	require.NoError(t, err)
	assert.Equal(t, "C", lang.Name)
}

func TestClassifyTieBreakLargerTotal(t *testing.T) {
	// Both models assign "x" probability (count+1)/(total+1), which is 1
	// for each, so the scores tie exactly. The larger training total wins
	// even though it sorts later by name.
	models := NewModelSet([]types.TokenTable{
		{Language: "Apple", Tokens: map[string]int64{"x": 1}},
		{Language: "Zebra", Tokens: map[string]int64{"x": 3}},
	})
	clf := New(models, nil)

	apple := &types.Language{Name: "Apple"}
	zebra := &types.Language{Name: "Zebra"}

	lang, err := clf.Classify([]byte("x x x"), []*types.Language{apple, zebra})
	require.NoError(t, err)
	assert.Equal(t, "Zebra", lang.Name)
}

func TestClassifyTieBreakLexicographic(t *testing.T) {
	// Identical models tie on score and total; the lexicographically
	// smaller name is the stable answer.
	models := NewModelSet([]types.TokenTable{
		{Language: "Alpha", Tokens: map[string]int64{"x": 2}},
		{Language: "Beta", Tokens: map[string]int64{"x": 2}},
	})
	clf := New(models, nil)

	alpha := &types.Language{Name: "Alpha"}
	beta := &types.Language{Name: "Beta"}

	lang, err := clf.Classify([]byte("x"), []*types.Language{beta, alpha})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", lang.Name)
}

func TestClassifyEmptyContent(t *testing.T) {
	c, cpp, _ := testLanguages()
	clf := New(testModels(), nil)

	// No tokens means all scores are zero; the deterministic tie-break
	// still yields a single stable answer.
	lang, err := clf.Classify(nil, []*types.Language{cpp, c})
	require.NoError(t, err)
	first := lang.Name
	for i := 0; i < 5; i++ {
		lang, err = clf.Classify(nil, []*types.Language{c, cpp})
		require.NoError(t, err)
		assert.Equal(t, first, lang.Name)
	}
}

func TestModelSetVocabularyUnion(t *testing.T) {
	models := NewModelSet([]types.TokenTable{
		{Language: "A", Tokens: map[string]int64{"x": 1, "y": 2}},
		{Language: "B", Tokens: map[string]int64{"y": 3, "z": 4}},
	})
	assert.Equal(t, float64(3), models.VocabularySize(), "vocabulary is the union of distinct tokens")
	assert.Equal(t, 2, models.Len())
	assert.Nil(t, models.Model("C"))
	assert.Equal(t, float64(7), models.Model("B").Total)
}
