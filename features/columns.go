package features

// Feature column names.
const (
	ColNodeWeight        = "node-weight"
	ColInDegree          = "in-degree"
	ColOutDegree         = "out-degree"
	ColDegree            = "degree"
	ColClosenessWtd      = "closeness-wtd"
	ColInClosenessWtd    = "in-closeness-wtd"
	ColOutClosenessWtd   = "out-closeness-wtd"
	ColClosenessUnwtd    = "closeness-unwtd"
	ColInClosenessUnwtd  = "in-closeness-unwtd"
	ColOutClosenessUnwtd = "out-closeness-unwtd"
	ColBetweennessWtd    = "betweenness-wtd"
	ColBetweennessUnwtd  = "betweenness-unwtd"
	ColInfluenceWtd      = "first-order-influence-wtd"
	ColInfluenceUnwtd    = "first-order-influence-unwtd"
	ColClustering        = "clustering-coefficient"
)

var columns = []string{
	ColNodeWeight,
	ColInDegree,
	ColOutDegree,
	ColDegree,
	ColClosenessWtd,
	ColInClosenessWtd,
	ColOutClosenessWtd,
	ColClosenessUnwtd,
	ColInClosenessUnwtd,
	ColOutClosenessUnwtd,
	ColBetweennessWtd,
	ColBetweennessUnwtd,
	ColInfluenceWtd,
	ColInfluenceUnwtd,
	ColClustering,
}

// Columns returns the feature column names in their fixed order.
func Columns() []string {
	return append([]string(nil), columns...)
}
