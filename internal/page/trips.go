package page

// Trips are the day-trip pictures on the surroundings page, in page order.
var Trips = []Picture{
	{Src: "assets/trips/termal-podhajska.jpg", Alt: "Termálne kúpalisko Podhájska"},
	{Src: "assets/trips/nitriansky-hrad.jpg", Alt: "Nitriansky hrad"},
	{Src: "assets/trips/kastiel-topolcianky.jpg", Alt: "Kaštieľ Topoľčianky"},
	{Src: "assets/trips/bojnicky-zamok.jpg", Alt: "Bojnický zámok"},
	{Src: "assets/trips/arboretum-mlynany.jpg", Alt: "Arborétum Mlyňany"},
	{Src: "assets/trips/komarno-pevnost.jpg", Alt: "Pevnosť Komárno"},
}
