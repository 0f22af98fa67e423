package encoding

import (
	"github.com/Aksh8804/india-estuaries-api/model"
	"github.com/paulmach/orb/geojson"
)

//SurveyFeatureCollection builds one feature per survey point, an empty input gives an empty collection rather than null
func SurveyFeatureCollection(features []*model.SurveyFeature) *geojson.FeatureCollection {

	fc := geojson.NewFeatureCollection()

	for _, sf := range features {
		feat := geojson.NewFeature(sf.Geometry)
		for k, v := range sf.Properties {
			feat.Properties[k] = v
		}
		fc.Append(feat)
	}
	return fc
}
