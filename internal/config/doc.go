// Package config loads an airport network ("fleet") from an HCL file.
//
// A fleet file declares the network settings, the airports, optional
// explicit edges, initial weather and an optional default route:
//
//	network {
//	  topology = "complete"   # "explicit" or "hub"
//	  max_leg  = 400
//	  hubs     = [airports.ORD] # hub topology only
//	}
//
//	airport "JFK" {
//	  x = 150
//	  y = 100
//	}
//
//	edge {
//	  from   = airports.JFK
//	  to     = airports.ORD
//	  weight = 12
//	}
//
//	weather {
//	  from        = "JFK"
//	  to          = airports.ORD
//	  condition   = "bad"
//	  description = "Thunderstorm"
//	}
//
//	storms {
//	  probability  = 0.1      # per linked pair
//	  seed         = 7        # omitted: a new draw every run
//	  descriptions = ["Rain", "Storm"]
//	}
//
//	route {
//	  from = "JFK"
//	  to   = 1
//	}
//
// Endpoints are HCL expressions evaluated against an `airports` object that
// maps every code to its index. A string is resolved as a code (or, when it
// is all digits, as an index) and a number as an index.
//
// Random storms are drawn before the weather blocks, so explicit weather
// wins. A file without airport blocks uses the built-in demonstration fleet.
package config
