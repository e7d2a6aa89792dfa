package dto

type OptionsResponse struct {
	Weather      []string `json:"weather"`
	TrafficLevel []string `json:"traffic_level"`
	VehicleType  []string `json:"vehicle_type"`
	TimeOfDay    []string `json:"time_of_day"`
}

// DeliveryRowResponse is one row of the history table.
type DeliveryRowResponse struct {
	OrderID         string  `json:"order_id"`
	DistanceKm      float64 `json:"distance_km"`
	TimeOfDay       string  `json:"time_of_day"`
	DeliveryTimeMin float64 `json:"delivery_time_min"`
}

type SummaryResponse struct {
	Filters                  map[string]string     `json:"filters"`
	Count                    int                   `json:"count"`
	AvgDeliveryTimeMin       float64               `json:"avg_delivery_time_min"`
	AvgDistanceKm            float64               `json:"avg_distance_km"`
	GlobalAvgDeliveryTimeMin float64               `json:"global_avg_delivery_time_min"`
	GlobalAvgDistanceKm      float64               `json:"global_avg_distance_km"`
	Message                  string                `json:"message,omitempty"`
	Deliveries               []DeliveryRowResponse `json:"deliveries"`
}
