// Package ultimateguitar fetches and parses pages from ultimate-guitar.com.
//
// Every page of the site embeds its data as JSON in the data-content
// attribute of a div with class js-store. Client retrieves that payload
// for tab, search, explore and artist pages; Parser turns payloads into
// domain documents and result sets.
package ultimateguitar
