package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type BoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

type ClusterResponse struct {
	ClusterID  string              `json:"cluster_id"`
	Center     CoordinatesResponse `json:"center"`
	Bounds     BoundsResponse      `json:"bounds"`
	MeanRating float64             `json:"mean_rating"`
	PriceMin   float64             `json:"price_min"`
	PriceMax   float64             `json:"price_max"`
	Members    []HotelResponse     `json:"members"`
}

type ClustersResponse struct {
	ClusteringActive bool              `json:"clustering_active"`
	Zoom             float64           `json:"zoom"`
	Clusters         []ClusterResponse `json:"clusters"`
	Unclustered      []HotelResponse   `json:"unclustered"`
}
