package domain

import "math"

// Field names a column of the delivery dataset. Values match the CSV header
// after whitespace trimming.
type Field string

const (
	FieldOrderID            Field = "Order_ID"
	FieldDistanceKm         Field = "Distance_km"
	FieldWeather            Field = "Weather"
	FieldTrafficLevel       Field = "Traffic_Level"
	FieldTimeOfDay          Field = "Time_of_Day"
	FieldVehicleType        Field = "Vehicle_Type"
	FieldPreparationTimeMin Field = "Preparation_Time_min"
	FieldCourierExperience  Field = "Courier_Experience_yrs"
	FieldDeliveryTimeMin    Field = "Delivery_Time_min"
)

// Unknown replaces missing categorical values at load time.
const Unknown = "Unknown"

// Columns lists every dataset column in file order.
var Columns = []Field{
	FieldOrderID,
	FieldDistanceKm,
	FieldWeather,
	FieldTrafficLevel,
	FieldTimeOfDay,
	FieldVehicleType,
	FieldPreparationTimeMin,
	FieldCourierExperience,
	FieldDeliveryTimeMin,
}

// Represents one delivery event with its environmental and outcome attributes.
// Sources report a missing categorical value as "" and a missing numeric value
// as NaN; NewDataset imputes both.
type DeliveryRecord struct {
	OrderID              string
	DistanceKm           float64
	Weather              string
	TrafficLevel         string
	TimeOfDay            string
	VehicleType          string
	PreparationTimeMin   float64
	CourierExperienceYrs float64
	DeliveryTimeMin      float64
}

// IsCategorical reports whether f names a string-valued column that can be
// used in Criteria and DistinctValues.
func (f Field) IsCategorical() bool {
	switch f {
	case FieldWeather, FieldTrafficLevel, FieldTimeOfDay, FieldVehicleType:
		return true
	}
	return false
}

// IsNumeric reports whether f names a float-valued column that can be averaged.
func (f Field) IsNumeric() bool {
	switch f {
	case FieldDistanceKm, FieldPreparationTimeMin, FieldCourierExperience, FieldDeliveryTimeMin:
		return true
	}
	return false
}

// Category returns the value of a categorical field.
func (r DeliveryRecord) Category(f Field) (string, bool) {
	switch f {
	case FieldWeather:
		return r.Weather, true
	case FieldTrafficLevel:
		return r.TrafficLevel, true
	case FieldTimeOfDay:
		return r.TimeOfDay, true
	case FieldVehicleType:
		return r.VehicleType, true
	}
	return "", false
}

// Number returns the value of a numeric field.
func (r DeliveryRecord) Number(f Field) (float64, bool) {
	switch f {
	case FieldDistanceKm:
		return r.DistanceKm, true
	case FieldPreparationTimeMin:
		return r.PreparationTimeMin, true
	case FieldCourierExperience:
		return r.CourierExperienceYrs, true
	case FieldDeliveryTimeMin:
		return r.DeliveryTimeMin, true
	}
	return math.NaN(), false
}
