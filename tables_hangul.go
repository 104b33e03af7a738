package ucg

// Hangul_Syllable_Type=LV_Syllable (singletons) and LVT_Syllable (ranges),
// for precomposed Hangul syllables in the U+AC00..U+D7A3 block.
//
// These are not hand-curated from a Unicode data file: they are the output
// of the Hangul syllable composition algorithm (The Unicode Standard §3.12,
// "Combining Jamo Behavior"), which has been stable since Unicode 2.0:
// syllable = 0xAC00 + (L*21 + V)*28 + T, for L in [0,19), V in [0,21),
// T in [0,28). T=0 is an LV syllable; T in [1,28) is an LVT syllable. The
// table shape (sorted singleton array / sorted range array) matches the
// other hard-coded property tables in this package; the values were
// generated mechanically from that formula.

var hangulSyllableLV = [...]rune{
	0xAC00, 0xAC1C, 0xAC38, 0xAC54, 0xAC70, 0xAC8C, 0xACA8, 0xACC4, 0xACE0, 0xACFC,
	0xAD18, 0xAD34, 0xAD50, 0xAD6C, 0xAD88, 0xADA4, 0xADC0, 0xADDC, 0xADF8, 0xAE14,
	0xAE30, 0xAE4C, 0xAE68, 0xAE84, 0xAEA0, 0xAEBC, 0xAED8, 0xAEF4, 0xAF10, 0xAF2C,
	0xAF48, 0xAF64, 0xAF80, 0xAF9C, 0xAFB8, 0xAFD4, 0xAFF0, 0xB00C, 0xB028, 0xB044,
	0xB060, 0xB07C, 0xB098, 0xB0B4, 0xB0D0, 0xB0EC, 0xB108, 0xB124, 0xB140, 0xB15C,
	0xB178, 0xB194, 0xB1B0, 0xB1CC, 0xB1E8, 0xB204, 0xB220, 0xB23C, 0xB258, 0xB274,
	0xB290, 0xB2AC, 0xB2C8, 0xB2E4, 0xB300, 0xB31C, 0xB338, 0xB354, 0xB370, 0xB38C,
	0xB3A8, 0xB3C4, 0xB3E0, 0xB3FC, 0xB418, 0xB434, 0xB450, 0xB46C, 0xB488, 0xB4A4,
	0xB4C0, 0xB4DC, 0xB4F8, 0xB514, 0xB530, 0xB54C, 0xB568, 0xB584, 0xB5A0, 0xB5BC,
	0xB5D8, 0xB5F4, 0xB610, 0xB62C, 0xB648, 0xB664, 0xB680, 0xB69C, 0xB6B8, 0xB6D4,
	0xB6F0, 0xB70C, 0xB728, 0xB744, 0xB760, 0xB77C, 0xB798, 0xB7B4, 0xB7D0, 0xB7EC,
	0xB808, 0xB824, 0xB840, 0xB85C, 0xB878, 0xB894, 0xB8B0, 0xB8CC, 0xB8E8, 0xB904,
	0xB920, 0xB93C, 0xB958, 0xB974, 0xB990, 0xB9AC, 0xB9C8, 0xB9E4, 0xBA00, 0xBA1C,
	0xBA38, 0xBA54, 0xBA70, 0xBA8C, 0xBAA8, 0xBAC4, 0xBAE0, 0xBAFC, 0xBB18, 0xBB34,
	0xBB50, 0xBB6C, 0xBB88, 0xBBA4, 0xBBC0, 0xBBDC, 0xBBF8, 0xBC14, 0xBC30, 0xBC4C,
	0xBC68, 0xBC84, 0xBCA0, 0xBCBC, 0xBCD8, 0xBCF4, 0xBD10, 0xBD2C, 0xBD48, 0xBD64,
	0xBD80, 0xBD9C, 0xBDB8, 0xBDD4, 0xBDF0, 0xBE0C, 0xBE28, 0xBE44, 0xBE60, 0xBE7C,
	0xBE98, 0xBEB4, 0xBED0, 0xBEEC, 0xBF08, 0xBF24, 0xBF40, 0xBF5C, 0xBF78, 0xBF94,
	0xBFB0, 0xBFCC, 0xBFE8, 0xC004, 0xC020, 0xC03C, 0xC058, 0xC074, 0xC090, 0xC0AC,
	0xC0C8, 0xC0E4, 0xC100, 0xC11C, 0xC138, 0xC154, 0xC170, 0xC18C, 0xC1A8, 0xC1C4,
	0xC1E0, 0xC1FC, 0xC218, 0xC234, 0xC250, 0xC26C, 0xC288, 0xC2A4, 0xC2C0, 0xC2DC,
	0xC2F8, 0xC314, 0xC330, 0xC34C, 0xC368, 0xC384, 0xC3A0, 0xC3BC, 0xC3D8, 0xC3F4,
	0xC410, 0xC42C, 0xC448, 0xC464, 0xC480, 0xC49C, 0xC4B8, 0xC4D4, 0xC4F0, 0xC50C,
	0xC528, 0xC544, 0xC560, 0xC57C, 0xC598, 0xC5B4, 0xC5D0, 0xC5EC, 0xC608, 0xC624,
	0xC640, 0xC65C, 0xC678, 0xC694, 0xC6B0, 0xC6CC, 0xC6E8, 0xC704, 0xC720, 0xC73C,
	0xC758, 0xC774, 0xC790, 0xC7AC, 0xC7C8, 0xC7E4, 0xC800, 0xC81C, 0xC838, 0xC854,
	0xC870, 0xC88C, 0xC8A8, 0xC8C4, 0xC8E0, 0xC8FC, 0xC918, 0xC934, 0xC950, 0xC96C,
	0xC988, 0xC9A4, 0xC9C0, 0xC9DC, 0xC9F8, 0xCA14, 0xCA30, 0xCA4C, 0xCA68, 0xCA84,
	0xCAA0, 0xCABC, 0xCAD8, 0xCAF4, 0xCB10, 0xCB2C, 0xCB48, 0xCB64, 0xCB80, 0xCB9C,
	0xCBB8, 0xCBD4, 0xCBF0, 0xCC0C, 0xCC28, 0xCC44, 0xCC60, 0xCC7C, 0xCC98, 0xCCB4,
	0xCCD0, 0xCCEC, 0xCD08, 0xCD24, 0xCD40, 0xCD5C, 0xCD78, 0xCD94, 0xCDB0, 0xCDCC,
	0xCDE8, 0xCE04, 0xCE20, 0xCE3C, 0xCE58, 0xCE74, 0xCE90, 0xCEAC, 0xCEC8, 0xCEE4,
	0xCF00, 0xCF1C, 0xCF38, 0xCF54, 0xCF70, 0xCF8C, 0xCFA8, 0xCFC4, 0xCFE0, 0xCFFC,
	0xD018, 0xD034, 0xD050, 0xD06C, 0xD088, 0xD0A4, 0xD0C0, 0xD0DC, 0xD0F8, 0xD114,
	0xD130, 0xD14C, 0xD168, 0xD184, 0xD1A0, 0xD1BC, 0xD1D8, 0xD1F4, 0xD210, 0xD22C,
	0xD248, 0xD264, 0xD280, 0xD29C, 0xD2B8, 0xD2D4, 0xD2F0, 0xD30C, 0xD328, 0xD344,
	0xD360, 0xD37C, 0xD398, 0xD3B4, 0xD3D0, 0xD3EC, 0xD408, 0xD424, 0xD440, 0xD45C,
	0xD478, 0xD494, 0xD4B0, 0xD4CC, 0xD4E8, 0xD504, 0xD520, 0xD53C, 0xD558, 0xD574,
	0xD590, 0xD5AC, 0xD5C8, 0xD5E4, 0xD600, 0xD61C, 0xD638, 0xD654, 0xD670, 0xD68C,
	0xD6A8, 0xD6C4, 0xD6E0, 0xD6FC, 0xD718, 0xD734, 0xD750, 0xD76C, 0xD788,
}

var hangulSyllableLVTRanges = [...]rune{
	0xAC01, 0xAC1B, 0xAC1D, 0xAC37, 0xAC39, 0xAC53, 0xAC55, 0xAC6F, 0xAC71, 0xAC8B,
	0xAC8D, 0xACA7, 0xACA9, 0xACC3, 0xACC5, 0xACDF, 0xACE1, 0xACFB, 0xACFD, 0xAD17,
	0xAD19, 0xAD33, 0xAD35, 0xAD4F, 0xAD51, 0xAD6B, 0xAD6D, 0xAD87, 0xAD89, 0xADA3,
	0xADA5, 0xADBF, 0xADC1, 0xADDB, 0xADDD, 0xADF7, 0xADF9, 0xAE13, 0xAE15, 0xAE2F,
	0xAE31, 0xAE4B, 0xAE4D, 0xAE67, 0xAE69, 0xAE83, 0xAE85, 0xAE9F, 0xAEA1, 0xAEBB,
	0xAEBD, 0xAED7, 0xAED9, 0xAEF3, 0xAEF5, 0xAF0F, 0xAF11, 0xAF2B, 0xAF2D, 0xAF47,
	0xAF49, 0xAF63, 0xAF65, 0xAF7F, 0xAF81, 0xAF9B, 0xAF9D, 0xAFB7, 0xAFB9, 0xAFD3,
	0xAFD5, 0xAFEF, 0xAFF1, 0xB00B, 0xB00D, 0xB027, 0xB029, 0xB043, 0xB045, 0xB05F,
	0xB061, 0xB07B, 0xB07D, 0xB097, 0xB099, 0xB0B3, 0xB0B5, 0xB0CF, 0xB0D1, 0xB0EB,
	0xB0ED, 0xB107, 0xB109, 0xB123, 0xB125, 0xB13F, 0xB141, 0xB15B, 0xB15D, 0xB177,
	0xB179, 0xB193, 0xB195, 0xB1AF, 0xB1B1, 0xB1CB, 0xB1CD, 0xB1E7, 0xB1E9, 0xB203,
	0xB205, 0xB21F, 0xB221, 0xB23B, 0xB23D, 0xB257, 0xB259, 0xB273, 0xB275, 0xB28F,
	0xB291, 0xB2AB, 0xB2AD, 0xB2C7, 0xB2C9, 0xB2E3, 0xB2E5, 0xB2FF, 0xB301, 0xB31B,
	0xB31D, 0xB337, 0xB339, 0xB353, 0xB355, 0xB36F, 0xB371, 0xB38B, 0xB38D, 0xB3A7,
	0xB3A9, 0xB3C3, 0xB3C5, 0xB3DF, 0xB3E1, 0xB3FB, 0xB3FD, 0xB417, 0xB419, 0xB433,
	0xB435, 0xB44F, 0xB451, 0xB46B, 0xB46D, 0xB487, 0xB489, 0xB4A3, 0xB4A5, 0xB4BF,
	0xB4C1, 0xB4DB, 0xB4DD, 0xB4F7, 0xB4F9, 0xB513, 0xB515, 0xB52F, 0xB531, 0xB54B,
	0xB54D, 0xB567, 0xB569, 0xB583, 0xB585, 0xB59F, 0xB5A1, 0xB5BB, 0xB5BD, 0xB5D7,
	0xB5D9, 0xB5F3, 0xB5F5, 0xB60F, 0xB611, 0xB62B, 0xB62D, 0xB647, 0xB649, 0xB663,
	0xB665, 0xB67F, 0xB681, 0xB69B, 0xB69D, 0xB6B7, 0xB6B9, 0xB6D3, 0xB6D5, 0xB6EF,
	0xB6F1, 0xB70B, 0xB70D, 0xB727, 0xB729, 0xB743, 0xB745, 0xB75F, 0xB761, 0xB77B,
	0xB77D, 0xB797, 0xB799, 0xB7B3, 0xB7B5, 0xB7CF, 0xB7D1, 0xB7EB, 0xB7ED, 0xB807,
	0xB809, 0xB823, 0xB825, 0xB83F, 0xB841, 0xB85B, 0xB85D, 0xB877, 0xB879, 0xB893,
	0xB895, 0xB8AF, 0xB8B1, 0xB8CB, 0xB8CD, 0xB8E7, 0xB8E9, 0xB903, 0xB905, 0xB91F,
	0xB921, 0xB93B, 0xB93D, 0xB957, 0xB959, 0xB973, 0xB975, 0xB98F, 0xB991, 0xB9AB,
	0xB9AD, 0xB9C7, 0xB9C9, 0xB9E3, 0xB9E5, 0xB9FF, 0xBA01, 0xBA1B, 0xBA1D, 0xBA37,
	0xBA39, 0xBA53, 0xBA55, 0xBA6F, 0xBA71, 0xBA8B, 0xBA8D, 0xBAA7, 0xBAA9, 0xBAC3,
	0xBAC5, 0xBADF, 0xBAE1, 0xBAFB, 0xBAFD, 0xBB17, 0xBB19, 0xBB33, 0xBB35, 0xBB4F,
	0xBB51, 0xBB6B, 0xBB6D, 0xBB87, 0xBB89, 0xBBA3, 0xBBA5, 0xBBBF, 0xBBC1, 0xBBDB,
	0xBBDD, 0xBBF7, 0xBBF9, 0xBC13, 0xBC15, 0xBC2F, 0xBC31, 0xBC4B, 0xBC4D, 0xBC67,
	0xBC69, 0xBC83, 0xBC85, 0xBC9F, 0xBCA1, 0xBCBB, 0xBCBD, 0xBCD7, 0xBCD9, 0xBCF3,
	0xBCF5, 0xBD0F, 0xBD11, 0xBD2B, 0xBD2D, 0xBD47, 0xBD49, 0xBD63, 0xBD65, 0xBD7F,
	0xBD81, 0xBD9B, 0xBD9D, 0xBDB7, 0xBDB9, 0xBDD3, 0xBDD5, 0xBDEF, 0xBDF1, 0xBE0B,
	0xBE0D, 0xBE27, 0xBE29, 0xBE43, 0xBE45, 0xBE5F, 0xBE61, 0xBE7B, 0xBE7D, 0xBE97,
	0xBE99, 0xBEB3, 0xBEB5, 0xBECF, 0xBED1, 0xBEEB, 0xBEED, 0xBF07, 0xBF09, 0xBF23,
	0xBF25, 0xBF3F, 0xBF41, 0xBF5B, 0xBF5D, 0xBF77, 0xBF79, 0xBF93, 0xBF95, 0xBFAF,
	0xBFB1, 0xBFCB, 0xBFCD, 0xBFE7, 0xBFE9, 0xC003, 0xC005, 0xC01F, 0xC021, 0xC03B,
	0xC03D, 0xC057, 0xC059, 0xC073, 0xC075, 0xC08F, 0xC091, 0xC0AB, 0xC0AD, 0xC0C7,
	0xC0C9, 0xC0E3, 0xC0E5, 0xC0FF, 0xC101, 0xC11B, 0xC11D, 0xC137, 0xC139, 0xC153,
	0xC155, 0xC16F, 0xC171, 0xC18B, 0xC18D, 0xC1A7, 0xC1A9, 0xC1C3, 0xC1C5, 0xC1DF,
	0xC1E1, 0xC1FB, 0xC1FD, 0xC217, 0xC219, 0xC233, 0xC235, 0xC24F, 0xC251, 0xC26B,
	0xC26D, 0xC287, 0xC289, 0xC2A3, 0xC2A5, 0xC2BF, 0xC2C1, 0xC2DB, 0xC2DD, 0xC2F7,
	0xC2F9, 0xC313, 0xC315, 0xC32F, 0xC331, 0xC34B, 0xC34D, 0xC367, 0xC369, 0xC383,
	0xC385, 0xC39F, 0xC3A1, 0xC3BB, 0xC3BD, 0xC3D7, 0xC3D9, 0xC3F3, 0xC3F5, 0xC40F,
	0xC411, 0xC42B, 0xC42D, 0xC447, 0xC449, 0xC463, 0xC465, 0xC47F, 0xC481, 0xC49B,
	0xC49D, 0xC4B7, 0xC4B9, 0xC4D3, 0xC4D5, 0xC4EF, 0xC4F1, 0xC50B, 0xC50D, 0xC527,
	0xC529, 0xC543, 0xC545, 0xC55F, 0xC561, 0xC57B, 0xC57D, 0xC597, 0xC599, 0xC5B3,
	0xC5B5, 0xC5CF, 0xC5D1, 0xC5EB, 0xC5ED, 0xC607, 0xC609, 0xC623, 0xC625, 0xC63F,
	0xC641, 0xC65B, 0xC65D, 0xC677, 0xC679, 0xC693, 0xC695, 0xC6AF, 0xC6B1, 0xC6CB,
	0xC6CD, 0xC6E7, 0xC6E9, 0xC703, 0xC705, 0xC71F, 0xC721, 0xC73B, 0xC73D, 0xC757,
	0xC759, 0xC773, 0xC775, 0xC78F, 0xC791, 0xC7AB, 0xC7AD, 0xC7C7, 0xC7C9, 0xC7E3,
	0xC7E5, 0xC7FF, 0xC801, 0xC81B, 0xC81D, 0xC837, 0xC839, 0xC853, 0xC855, 0xC86F,
	0xC871, 0xC88B, 0xC88D, 0xC8A7, 0xC8A9, 0xC8C3, 0xC8C5, 0xC8DF, 0xC8E1, 0xC8FB,
	0xC8FD, 0xC917, 0xC919, 0xC933, 0xC935, 0xC94F, 0xC951, 0xC96B, 0xC96D, 0xC987,
	0xC989, 0xC9A3, 0xC9A5, 0xC9BF, 0xC9C1, 0xC9DB, 0xC9DD, 0xC9F7, 0xC9F9, 0xCA13,
	0xCA15, 0xCA2F, 0xCA31, 0xCA4B, 0xCA4D, 0xCA67, 0xCA69, 0xCA83, 0xCA85, 0xCA9F,
	0xCAA1, 0xCABB, 0xCABD, 0xCAD7, 0xCAD9, 0xCAF3, 0xCAF5, 0xCB0F, 0xCB11, 0xCB2B,
	0xCB2D, 0xCB47, 0xCB49, 0xCB63, 0xCB65, 0xCB7F, 0xCB81, 0xCB9B, 0xCB9D, 0xCBB7,
	0xCBB9, 0xCBD3, 0xCBD5, 0xCBEF, 0xCBF1, 0xCC0B, 0xCC0D, 0xCC27, 0xCC29, 0xCC43,
	0xCC45, 0xCC5F, 0xCC61, 0xCC7B, 0xCC7D, 0xCC97, 0xCC99, 0xCCB3, 0xCCB5, 0xCCCF,
	0xCCD1, 0xCCEB, 0xCCED, 0xCD07, 0xCD09, 0xCD23, 0xCD25, 0xCD3F, 0xCD41, 0xCD5B,
	0xCD5D, 0xCD77, 0xCD79, 0xCD93, 0xCD95, 0xCDAF, 0xCDB1, 0xCDCB, 0xCDCD, 0xCDE7,
	0xCDE9, 0xCE03, 0xCE05, 0xCE1F, 0xCE21, 0xCE3B, 0xCE3D, 0xCE57, 0xCE59, 0xCE73,
	0xCE75, 0xCE8F, 0xCE91, 0xCEAB, 0xCEAD, 0xCEC7, 0xCEC9, 0xCEE3, 0xCEE5, 0xCEFF,
	0xCF01, 0xCF1B, 0xCF1D, 0xCF37, 0xCF39, 0xCF53, 0xCF55, 0xCF6F, 0xCF71, 0xCF8B,
	0xCF8D, 0xCFA7, 0xCFA9, 0xCFC3, 0xCFC5, 0xCFDF, 0xCFE1, 0xCFFB, 0xCFFD, 0xD017,
	0xD019, 0xD033, 0xD035, 0xD04F, 0xD051, 0xD06B, 0xD06D, 0xD087, 0xD089, 0xD0A3,
	0xD0A5, 0xD0BF, 0xD0C1, 0xD0DB, 0xD0DD, 0xD0F7, 0xD0F9, 0xD113, 0xD115, 0xD12F,
	0xD131, 0xD14B, 0xD14D, 0xD167, 0xD169, 0xD183, 0xD185, 0xD19F, 0xD1A1, 0xD1BB,
	0xD1BD, 0xD1D7, 0xD1D9, 0xD1F3, 0xD1F5, 0xD20F, 0xD211, 0xD22B, 0xD22D, 0xD247,
	0xD249, 0xD263, 0xD265, 0xD27F, 0xD281, 0xD29B, 0xD29D, 0xD2B7, 0xD2B9, 0xD2D3,
	0xD2D5, 0xD2EF, 0xD2F1, 0xD30B, 0xD30D, 0xD327, 0xD329, 0xD343, 0xD345, 0xD35F,
	0xD361, 0xD37B, 0xD37D, 0xD397, 0xD399, 0xD3B3, 0xD3B5, 0xD3CF, 0xD3D1, 0xD3EB,
	0xD3ED, 0xD407, 0xD409, 0xD423, 0xD425, 0xD43F, 0xD441, 0xD45B, 0xD45D, 0xD477,
	0xD479, 0xD493, 0xD495, 0xD4AF, 0xD4B1, 0xD4CB, 0xD4CD, 0xD4E7, 0xD4E9, 0xD503,
	0xD505, 0xD51F, 0xD521, 0xD53B, 0xD53D, 0xD557, 0xD559, 0xD573, 0xD575, 0xD58F,
	0xD591, 0xD5AB, 0xD5AD, 0xD5C7, 0xD5C9, 0xD5E3, 0xD5E5, 0xD5FF, 0xD601, 0xD61B,
	0xD61D, 0xD637, 0xD639, 0xD653, 0xD655, 0xD66F, 0xD671, 0xD68B, 0xD68D, 0xD6A7,
	0xD6A9, 0xD6C3, 0xD6C5, 0xD6DF, 0xD6E1, 0xD6FB, 0xD6FD, 0xD717, 0xD719, 0xD733,
	0xD735, 0xD74F, 0xD751, 0xD76B, 0xD76D, 0xD787, 0xD789, 0xD7A3,
}

// IsHangulSyllableLV reports whether r is Hangul_Syllable_Type=LV_Syllable.
func IsHangulSyllableLV(r rune) bool {
	return inSingletons(r, hangulSyllableLV[:])
}

// IsHangulSyllableLVT reports whether r is Hangul_Syllable_Type=
// LVT_Syllable.
func IsHangulSyllableLVT(r rune) bool {
	return inRanges(r, hangulSyllableLVTRanges[:])
}
