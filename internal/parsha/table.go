package parsha

// rows holds the weekly portions for each year type. Entry i is the
// portion read on the i-th Shabbos counted from the week of Rosh Hashana;
// None marks a Shabbos taken by a festival.
var rows = [17][]Parsha{
	// 0: non-leap, Monday, deficient
	{
		Vayeilech, Haazinu, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, None, Shmini, TazriaMetzora,
		AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 1: non-leap, Monday complete or Tuesday regular
	{
		Vayeilech, Haazinu, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, None, Shmini, TazriaMetzora,
		AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, None, Nasso, Behaaloscha, Shlach, Korach,
		ChukasBalak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 2: non-leap, Thursday, regular
	{
		Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, None, None, Shmini, TazriaMetzora,
		AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		Nitzavim,
	},
	// 3: non-leap, Thursday, complete
	{
		Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, None, Shmini, TazriaMetzora,
		AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		Nitzavim,
	},
	// 4: non-leap, Shabbos, deficient
	{
		None, Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, None, Shmini, TazriaMetzora,
		AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		Nitzavim,
	},
	// 5: non-leap, Shabbos, complete
	{
		None, Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, None, Shmini, TazriaMetzora,
		AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 6: leap, Monday, deficient
	{
		Vayeilech, Haazinu, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, None,
		AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, None, Nasso, Behaaloscha, Shlach, Korach,
		ChukasBalak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 7: leap, Monday complete or Tuesday regular
	{
		Vayeilech, Haazinu, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, None, None,
		AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach,
		Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		Nitzavim,
	},
	// 8: leap, Thursday, deficient
	{
		Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, AchreiMos,
		None, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, Matos, Masei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		Nitzavim,
	},
	// 9: leap, Thursday, complete
	{
		Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, AchreiMos,
		None, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, Matos, Masei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 10: leap, Shabbos, deficient
	{
		None, Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, None,
		AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach,
		Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 11: leap, Shabbos, complete
	{
		None, Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, None,
		AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, None, Nasso, Behaaloscha, Shlach, Korach,
		ChukasBalak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 12: Israel: non-leap, Monday complete or Tuesday regular
	{
		Vayeilech, Haazinu, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, None, Shmini, TazriaMetzora,
		AchreiMosKedoshim, Emor, BeharBechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 13: Israel: non-leap, Thursday, regular
	{
		Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, VayakhelPekudei, Vayikra, Tzav, None, Shmini, TazriaMetzora,
		AchreiMosKedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach, Chukas,
		Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		Nitzavim,
	},
	// 14: Israel: leap, Monday, deficient
	{
		Vayeilech, Haazinu, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, None,
		AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach,
		Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
	// 15: Israel: leap, Monday complete or Tuesday regular
	{
		Vayeilech, Haazinu, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, None,
		AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach,
		Chukas, Balak, Pinchas, Matos, Masei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei,
		KiSavo, Nitzavim,
	},
	// 16: Israel: leap, Shabbos, complete
	{
		None, Haazinu, None, None, Bereshis, Noach, LechLecha, Vayera, ChayeiSara, Toldos, Vayetzei,
		Vayishlach, Vayeshev, Miketz, Vayigash, Vayechi, Shemos, Vaera, Bo, Beshalach, Yisro, Mishpatim,
		Terumah, Tetzaveh, KiSisa, Vayakhel, Pekudei, Vayikra, Tzav, Shmini, Tazria, Metzora, None,
		AchreiMos, Kedoshim, Emor, Behar, Bechukosai, Bamidbar, Nasso, Behaaloscha, Shlach, Korach,
		Chukas, Balak, Pinchas, MatosMasei, Devarim, Vaeschanan, Eikev, Reeh, Shoftim, KiSeitzei, KiSavo,
		NitzavimVayeilech,
	},
}
