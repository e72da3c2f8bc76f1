package sources

const (
	CountriesBaseURL  = "https://countriesnow.space"
	CountriesEndpoint = "/api/v0.1/countries"

	FlagURLTemplate = "https://flagsapi.com/%s/flat/64.png"

	// Natural Earth admin-0 boundaries, usable with fetch-map.
	WorldGeoJSONURL = "https://raw.githubusercontent.com/nvkelso/natural-earth-vector/master/geojson/ne_110m_admin_0_countries.geojson"
)
