package domain

// ExampleNetwork builds a small, multi-modal demonstration network: six
// hubs, a pair of sea ports, a pair of airports, a rail terminal, and a
// warehouse, connected by road, sea, air, and rail edges. It is used by
// cmd/routingctl's seed command and by the integration tests as a fixed,
// reproducible fixture.
func ExampleNetwork() *Store {
	s := NewStore()

	for _, n := range []*Node{
		{ID: "ny-hub", Name: "New York Hub", Type: NodeTypeHub, Coordinates: Coordinates{Lat: 40.7128, Lng: -74.0060}, Capacity: 10000},
		{ID: "la-hub", Name: "Los Angeles Hub", Type: NodeTypeHub, Coordinates: Coordinates{Lat: 34.0522, Lng: -118.2437}, Capacity: 10000},
		{ID: "chicago-hub", Name: "Chicago Hub", Type: NodeTypeHub, Coordinates: Coordinates{Lat: 41.8781, Lng: -87.6298}, Capacity: 8000},
		{ID: "atlanta-hub", Name: "Atlanta Hub", Type: NodeTypeHub, Coordinates: Coordinates{Lat: 33.7490, Lng: -84.3880}, Capacity: 8000},
		{ID: "dallas-hub", Name: "Dallas Hub", Type: NodeTypeHub, Coordinates: Coordinates{Lat: 32.7767, Lng: -96.7970}, Capacity: 8000},
		{ID: "seattle-hub", Name: "Seattle Hub", Type: NodeTypeHub, Coordinates: Coordinates{Lat: 47.6062, Lng: -122.3321}, Capacity: 6000},
		{ID: "la-port", Name: "Los Angeles Port", Type: NodeTypePort, Coordinates: Coordinates{Lat: 33.7406, Lng: -118.2706}, Capacity: 50000, CustomsRequired: true},
		{ID: "ny-port", Name: "New York Port", Type: NodeTypePort, Coordinates: Coordinates{Lat: 40.6700, Lng: -74.0100}, Capacity: 50000, CustomsRequired: true},
		{ID: "lax-airport", Name: "Los Angeles Airport", Type: NodeTypeAirport, Coordinates: Coordinates{Lat: 33.9416, Lng: -118.4085}, Capacity: 2000, CustomsRequired: true},
		{ID: "jfk-airport", Name: "JFK Airport", Type: NodeTypeAirport, Coordinates: Coordinates{Lat: 40.6413, Lng: -73.7781}, Capacity: 2000, CustomsRequired: true},
		{ID: "chicago-rail", Name: "Chicago Rail Terminal", Type: NodeTypeRailTerminal, Coordinates: Coordinates{Lat: 41.8500, Lng: -87.6500}, Capacity: 6000},
		{ID: "memphis-warehouse", Name: "Memphis Warehouse", Type: NodeTypeWarehouse, Coordinates: Coordinates{Lat: 35.1495, Lng: -90.0490}, Capacity: 4000},
	} {
		s.AddNode(n)
	}

	road := func(id, from, to string, distance, baseTime, baseCost float64) *Edge {
		return &Edge{
			ID: id, Source: from, Target: to, Mode: ModeRoad,
			Distance: distance, BaseTime: baseTime, BaseCost: baseCost,
			Capacity: 5000, Reliability: 0.95, CarbonEmissions: 0.12,
			FuelCost: baseCost * 0.2, TollCost: baseCost * 0.05,
			SpeedLimit: 105, RoadQuality: 0.9,
		}
	}
	bidirRoad := func(idFwd, idRev, a, b string, distance, baseTime, baseCost float64) {
		s.AddEdge(road(idFwd, a, b, distance, baseTime, baseCost))
		s.AddEdge(road(idRev, b, a, distance, baseTime, baseCost))
	}

	bidirRoad("edge-la-dallas-road", "edge-dallas-la-road", "la-hub", "dallas-hub", 2000, 1200, 2000)
	bidirRoad("edge-dallas-atlanta-road", "edge-atlanta-dallas-road", "dallas-hub", "atlanta-hub", 1200, 720, 1200)
	bidirRoad("edge-atlanta-ny-road", "edge-ny-atlanta-road", "atlanta-hub", "ny-hub", 1200, 720, 1200)
	s.AddEdge(road("edge-chicago-ny-road", "chicago-hub", "ny-hub", 1150, 700, 1150))
	s.AddEdge(road("edge-ny-chicago-road", "ny-hub", "chicago-hub", 1150, 700, 1150))
	bidirRoad("edge-la-seattle-road", "edge-seattle-la-road", "la-hub", "seattle-hub", 1900, 1100, 1900)
	bidirRoad("edge-dallas-memphis-road", "edge-memphis-dallas-road", "dallas-hub", "memphis-warehouse", 700, 420, 700)
	bidirRoad("edge-atlanta-memphis-road", "edge-memphis-atlanta-road", "atlanta-hub", "memphis-warehouse", 500, 300, 500)
	bidirRoad("edge-chicago-memphis-road", "edge-memphis-chicago-road", "chicago-hub", "memphis-warehouse", 800, 480, 800)

	bidirRoad("edge-la-laport-road", "edge-laport-la-road", "la-hub", "la-port", 25, 40, 40)
	bidirRoad("edge-la-lax-road", "edge-lax-la-road", "la-hub", "lax-airport", 20, 30, 30)
	bidirRoad("edge-ny-nyport-road", "edge-nyport-ny-road", "ny-hub", "ny-port", 20, 35, 35)
	bidirRoad("edge-ny-jfk-road", "edge-jfk-ny-road", "ny-hub", "jfk-airport", 25, 40, 40)

	rail := func(id, from, to string, distance, baseTime, baseCost float64) *Edge {
		return &Edge{
			ID: id, Source: from, Target: to, Mode: ModeRail,
			Distance: distance, BaseTime: baseTime, BaseCost: baseCost,
			Capacity: 20000, Reliability: 0.92, CarbonEmissions: 0.03,
			FuelCost: baseCost * 0.1, SpeedLimit: 80, RoadQuality: 1,
		}
	}
	s.AddEdge(rail("edge-atlanta-chicagorail-rail", "atlanta-hub", "chicago-rail", 1000, 900, 900))
	s.AddEdge(rail("edge-chicagorail-atlanta-rail", "chicago-rail", "atlanta-hub", 1000, 900, 900))
	bidirRoad("edge-chicagorail-chicago-road", "edge-chicago-chicagorail-road", "chicago-rail", "chicago-hub", 10, 20, 15)

	sea := func(id, from, to string, distance, baseTime, baseCost float64) *Edge {
		return &Edge{
			ID: id, Source: from, Target: to, Mode: ModeSea,
			Distance: distance, BaseTime: baseTime, BaseCost: baseCost,
			Capacity: 100000, Reliability: 0.85, CarbonEmissions: 0.01,
			FuelCost: baseCost * 0.3, SpeedLimit: 40, RoadQuality: 1,
		}
	}
	s.AddEdge(sea("edge-laport-nyport-sea", "la-port", "ny-port", 8000, 20000, 4000))
	s.AddEdge(sea("edge-nyport-laport-sea", "ny-port", "la-port", 8000, 20000, 4000))

	air := func(id, from, to string, distance, baseTime, baseCost float64) *Edge {
		return &Edge{
			ID: id, Source: from, Target: to, Mode: ModeAir,
			Distance: distance, BaseTime: baseTime, BaseCost: baseCost,
			Capacity: 500, Reliability: 0.97, CarbonEmissions: 0.25,
			FuelCost: baseCost * 0.4, SpeedLimit: 850, RoadQuality: 1,
		}
	}
	s.AddEdge(air("edge-lax-jfk-air", "lax-airport", "jfk-airport", 3980, 330, 6000))
	s.AddEdge(air("edge-jfk-lax-air", "jfk-airport", "lax-airport", 3980, 330, 6000))

	return s
}
