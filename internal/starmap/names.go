package starmap

// names is the pool star names are drawn from. The order is part of the
// generator's output: reordering or editing it changes every population.
var names = []string{
	"Acamar", "Achird", "Adhafera", "Ain", "Alasia", "Albaldah", "Alcyone", "Aldhibah",
	"Alkes", "Almaaz", "Alrakis", "Alterf", "Aludra", "Alzirr", "Anser", "Arkab",
	"Ascella", "Asellus", "Atik", "Azha", "Barnard", "Baten", "Biham", "Botein",
	"Brachium", "Castula", "Cebalrai", "Celaeno", "Chara", "Chort", "Cursa", "Dabih",
	"Deneb", "Diadem", "Dschubba", "Dziban", "Edasich", "Electra", "Elgafar", "Elkurud",
	"Fafnir", "Fang", "Fawaris", "Fulu", "Furud", "Gienah", "Gomeisa", "Grumium",
	"Hamal", "Hassaleh", "Heze", "Homam", "Iklil", "Izar", "Jabbah", "Kaffaljidhma",
	"Kang", "Keid", "Kitalpha", "Kochab", "Kornephoros", "Kraz", "Lesath", "Libertas",
	"Maasym", "Maia", "Marfik", "Markab", "Matar", "Mebsuta", "Megrez", "Meissa",
	"Menkar", "Merga", "Merope", "Mesarthim", "Minchir", "Mintaka", "Mirach", "Muphrid",
	"Muscida", "Nashira", "Nekkar", "Nihal", "Nunki", "Okab", "Phact", "Phecda",
	"Pipirima", "Pleione", "Porrima", "Rana", "Rasalas", "Rotanev", "Ruchbah", "Sabik",
	"Sadachbia", "Sadalmelik", "Sadr", "Saiph", "Sarin", "Sceptrum", "Seginus", "Sham",
	"Sheratan", "Situla", "Skat", "Sualocin", "Subra", "Sulafat", "Syrma", "Tabit",
	"Talitha", "Tarazed", "Tegmine", "Tejat", "Thuban", "Tiaki", "Tureis", "Unukalhai",
	"Vindemiatrix", "Wasat", "Xamidimura", "Yed", "Yildun", "Zaniah", "Zaurak", "Zavijava",
	"Zibal", "Zosma",
}
