package extractors

import "regexp"

// Algorithm labels. The vocabulary is shared by every language so results
// can be compared across implementations of the same algorithm.
const (
	AlgoBinarySearch       = "binary_search"
	AlgoLinearSearch       = "linear_search"
	AlgoBubbleSort         = "bubble_sort"
	AlgoInsertionSort      = "insertion_sort"
	AlgoSelectionSort      = "selection_sort"
	AlgoMergeSort          = "merge_sort"
	AlgoQuickSort          = "quick_sort"
	AlgoDFS                = "dfs"
	AlgoBFS                = "bfs"
	AlgoDijkstra           = "dijkstra"
	AlgoDynamicProgramming = "dynamic_programming"
	AlgoGreedy             = "greedy_algorithm"
	AlgoKMP                = "kmp_algorithm"
	AlgoKruskal            = "kruskal_algorithm"
	AlgoPrim               = "prim_algorithm"
	AlgoFloydWarshall      = "floyd_warshall"
	AlgoTopologicalSort    = "topological_sort"
	AlgoAStar              = "a_star_search"
	AlgoHuffman            = "huffman_coding"
)

type signature struct {
	name    string
	pattern *regexp.Regexp
}

// signatureTable is an ordered list of signatures; the first match wins.
type signatureTable []signature

func newSignatureTable(pairs ...string) signatureTable {
	table := make(signatureTable, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		table = append(table, signature{
			name:    pairs[i],
			pattern: regexp.MustCompile(`(?i)` + pairs[i+1]),
		})
	}

	return table
}

func (t signatureTable) identify(code string) string {
	for _, sig := range t {
		if sig.pattern.MatchString(code) {
			return sig.name
		}
	}

	return ""
}

const (
	sigBinarySearch = `(mid|middle).*(low|left|start).*(high|right|end)|(low|left|start).*(high|right|end).*(mid|middle)`
	sigDijkstra     = `priority.*queue.*distance`
	sigGreedy       = `greedy|optimal.*local`
	sigKMP          = `pattern.*matching.*prefix`
	sigKruskal      = `minimum.*spanning.*tree.*sort.*edge`
	sigPrim         = `minimum.*spanning.*tree.*priority.*queue`
	sigFloyd        = `all.*pairs.*shortest.*path`
	sigTopological  = `directed.*acyclic.*graph.*order`
	sigAStar        = `heuristic.*open.*closed.*priority`
	sigHuffman      = `frequency.*prefix.*compression`
)

var pythonSignatures = newSignatureTable(
	AlgoBinarySearch, sigBinarySearch,
	AlgoLinearSearch, `for\s+\w+\s+in\s+\w+\s*:.*(==|is)\s+\w+`,
	AlgoBubbleSort, `for.*for.*if.*\[.*\].*\[.*\+.*\].*swap`,
	AlgoInsertionSort, `for.*while.*>.*\[.*\].*\[.*\-.*\]`,
	AlgoSelectionSort, `for.*for.*min.*if.*<`,
	AlgoMergeSort, `merge.*split|split.*merge|divide.*conquer`,
	AlgoQuickSort, `partition.*pivot`,
	AlgoDFS, `(stack|depth).*append.*pop`,
	AlgoBFS, `(queue|breadth).*append.*pop`,
	AlgoDijkstra, sigDijkstra,
	AlgoDynamicProgramming, `memo.*\[.*\].*\[.*\]|dp.*\[.*\].*\[.*\]`,
	AlgoGreedy, sigGreedy,
	AlgoKMP, sigKMP,
	AlgoKruskal, sigKruskal,
	AlgoPrim, sigPrim,
	AlgoFloydWarshall, sigFloyd,
	AlgoTopologicalSort, sigTopological,
	AlgoAStar, sigAStar,
	AlgoHuffman, sigHuffman,
)

var javaSignatures = newSignatureTable(
	AlgoBinarySearch, sigBinarySearch,
	AlgoLinearSearch, `for\s*\(.+\).*(==|equals).+return`,
	AlgoBubbleSort, `for\s*\(.+\).+for\s*\(.+\).+if\s*\(.+>\s*.+\)`,
	AlgoInsertionSort, `for\s*\(.+\).+while\s*\(.+>\s*.+\)`,
	AlgoSelectionSort, `for\s*\(.+\).+min.*for\s*\(.+\)`,
	AlgoMergeSort, `merge.+sort|sort.+merge|divide.+conquer`,
	AlgoQuickSort, `partition.+pivot`,
	AlgoDFS, `(stack|depth).*(push|add).*pop`,
	AlgoBFS, `(queue|breadth).*(push|add|offer).*poll`,
	AlgoDijkstra, sigDijkstra,
	AlgoDynamicProgramming, `dp\[.+\]\[.+\]`,
	AlgoGreedy, sigGreedy,
	AlgoKMP, sigKMP,
	AlgoKruskal, sigKruskal,
	AlgoPrim, sigPrim,
	AlgoFloydWarshall, sigFloyd,
	AlgoTopologicalSort, sigTopological,
	AlgoAStar, sigAStar,
	AlgoHuffman, sigHuffman,
)

// C and C++ share one table.
var clikeSignatures = newSignatureTable(
	AlgoBinarySearch, sigBinarySearch,
	AlgoLinearSearch, `for\s*\(.+\).*(==).+return`,
	AlgoBubbleSort, `for\s*\(.+\).+for\s*\(.+\).+if\s*\(.+>\s*.+\)`,
	AlgoInsertionSort, `for\s*\(.+\).+while\s*\(.+>\s*.+\)`,
	AlgoSelectionSort, `for\s*\(.+\).+min.*for\s*\(.+\)`,
	AlgoMergeSort, `merge.+sort|sort.+merge|divide.+conquer`,
	AlgoQuickSort, `partition.+pivot`,
	AlgoDFS, `(stack|depth).*(push).*pop`,
	AlgoBFS, `(queue|breadth).*(push).*pop`,
	AlgoDijkstra, sigDijkstra,
	AlgoDynamicProgramming, `dp\[.+\]\[.+\]`,
	AlgoGreedy, sigGreedy,
	AlgoKMP, sigKMP,
	AlgoKruskal, sigKruskal,
	AlgoPrim, sigPrim,
	AlgoFloydWarshall, sigFloyd,
	AlgoTopologicalSort, sigTopological,
	AlgoAStar, sigAStar,
	AlgoHuffman, sigHuffman,
)
